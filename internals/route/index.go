// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	fixtureCtrl "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/controller"
	fixtureRoute "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, ctl *fixtureCtrl.FixtureController, log *zap.Logger) {
	startTime = time.Now()

	log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	log.Info("[INFO] Setting up FixtureRoutes...")
	api := app.Group("/api")
	fixtureRoute.FixtureRoutes(api, ctl)
}
