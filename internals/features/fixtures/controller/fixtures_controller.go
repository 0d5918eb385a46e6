// file: internals/features/fixtures/controller/fixtures_controller.go
package controller

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/dto"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/taxonomy"
	helper "github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers"
)

// RegenerateFunc builds a fresh document; seed 0 means "pick one".
type RegenerateFunc func(seed int64) (*model.Document, error)

// FixtureController serves one in-memory document, swapped atomically on regenerate.
type FixtureController struct {
	mu         sync.RWMutex
	doc        *model.Document
	taxonomy   taxonomy.Taxonomy
	regenerate RegenerateFunc
	validate   *validator.Validate
}

func NewFixtureController(doc *model.Document, tx taxonomy.Taxonomy, regenerate RegenerateFunc) *FixtureController {
	return &FixtureController{
		doc:        doc,
		taxonomy:   tx,
		regenerate: regenerate,
		validate:   validator.New(),
	}
}

func (ctrl *FixtureController) current() *model.Document {
	ctrl.mu.RLock()
	defer ctrl.mu.RUnlock()
	return ctrl.doc
}

// GET /summary
func (ctrl *FixtureController) Summary(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", service.Summarize(ctrl.current()))
}

// GET /taxonomy
func (ctrl *FixtureController) Taxonomy(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", dto.FromTaxonomy(ctrl.taxonomy))
}

// GET /students?section=&grade=&class=&stream=&page=&per_page=
func (ctrl *FixtureController) ListStudents(c *fiber.Ctx) error {
	var q dto.StudentListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	if err := ctrl.validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if sec := strings.TrimSpace(q.Section); sec != "" {
		if _, ok := ctrl.taxonomy.Section(sec); !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown section: "+sec)
		}
	}
	if st := strings.TrimSpace(q.Stream); st != "" && !containsFold(ctrl.taxonomy.StreamNames(), st) {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown stream: "+st)
	}

	var matched []model.Student
	for _, s := range ctrl.current().StudentsInOrder() {
		if q.Matches(s) {
			matched = append(matched, s)
		}
	}

	paging := helper.NormalizePaging(q.Page, q.PerPage, 50, 500)
	start, end := paging.Window(len(matched))
	page := matched[start:end]
	if page == nil {
		page = []model.Student{}
	}
	return helper.JsonList(c, "ok", page,
		helper.BuildPaginationFromPage(int64(len(matched)), paging.Page, paging.PerPage, len(page)))
}

// GET /students/:id
func (ctrl *FixtureController) GetStudent(c *fiber.Ctx) error {
	s, ok := ctrl.current().Students[c.Params("id")]
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonOK(c, "ok", s)
}

// GET /attendance/:date
func (ctrl *FixtureController) ListAttendanceByDate(c *fiber.Ctx) error {
	byClass, ok := ctrl.current().Attendance[c.Params("date")]
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "no attendance for date")
	}
	return helper.JsonOK(c, "ok", byClass)
}

// GET /attendance/:date/:class
func (ctrl *FixtureController) GetClassAttendance(c *fiber.Ctx) error {
	class, err := url.PathUnescape(c.Params("class"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class")
	}
	rec, ok := ctrl.current().Attendance[c.Params("date")][class]
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}
	return helper.JsonOK(c, "ok", rec)
}

// GET /stats
func (ctrl *FixtureController) Stats(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", ctrl.current().Stats)
}

// POST /regenerate?seed=
func (ctrl *FixtureController) Regenerate(c *fiber.Ctx) error {
	var seed int64
	if raw := strings.TrimSpace(c.Query("seed")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "seed must be an integer")
		}
		seed = v
	}

	doc, err := ctrl.regenerate(seed)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.mu.Lock()
	ctrl.doc = doc
	ctrl.mu.Unlock()

	return helper.JsonCreated(c, "regenerated", service.Summarize(doc))
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
