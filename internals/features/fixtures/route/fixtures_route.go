// file: internals/features/fixtures/route/fixtures_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	fixtureCtrl "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/controller"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/middlewares"
)

func FixtureRoutes(r fiber.Router, ctl *fixtureCtrl.FixtureController) {
	g := r.Group("/fixtures")

	g.Get("/summary", ctl.Summary)
	g.Get("/taxonomy", ctl.Taxonomy)
	g.Get("/stats", ctl.Stats)

	g.Get("/students", ctl.ListStudents)
	g.Get("/students/:id", ctl.GetStudent)

	g.Get("/attendance/:date", ctl.ListAttendanceByDate)
	g.Get("/attendance/:date/:class", ctl.GetClassAttendance)

	g.Post("/regenerate", middlewares.RegenerateRateLimiter(), ctl.Regenerate)
}
