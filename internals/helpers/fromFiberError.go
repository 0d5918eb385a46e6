package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError renders any handler error in the ErrorResponse envelope.
// *fiber.Error keeps its status; everything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
