package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/configs"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared stack in order: recover, cors, log, gzip, etag, limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware(cfg.Server.AllowOrigins))
	app.Use(logger.LoggerMiddleware(cfg.Generator.Timezone))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
