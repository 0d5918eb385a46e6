package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	fixtureCtrl "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/controller"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/taxonomy"
	helper "github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		Count      int   `json:"count"`
	} `json:"pagination"`
}

func regenerator() fixtureCtrl.RegenerateFunc {
	opts := service.DefaultOptions()
	opts.Location = time.UTC
	return func(seed int64) (*model.Document, error) {
		g, _ := service.NewSeededGenerator(opts, seed, func() time.Time { return fixedNow }, nil)
		return g.Generate()
	}
}

func newTestApp(t *testing.T) (*fiber.App, *model.Document) {
	t.Helper()
	regen := regenerator()
	doc, err := regen(17)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	SetupRoutes(app, fixtureCtrl.NewFixtureController(doc, taxonomy.Default(), regen), zap.NewNop())
	return app, doc
}

func do(t *testing.T, app *fiber.App, method, target string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(body) > 0 && body[0] == '{' {
		require.NoError(t, json.Unmarshal(body, &env), string(body))
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSummary(t *testing.T) {
	app, doc := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/fixtures/summary")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var sum struct {
		Sections  int      `json:"sections"`
		Students  int      `json:"students"`
		Dates     []string `json:"dates"`
		CacheKeys []string `json:"cache_keys"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.Equal(t, 4, sum.Sections)
	assert.Equal(t, len(doc.Students), sum.Students)
	assert.Len(t, sum.Dates, 7)
	assert.Equal(t, []string{"stats_2024-03-09_2024-03-15_all_all"}, sum.CacheKeys)
}

func TestTaxonomy(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/fixtures/taxonomy")
	require.Equal(t, http.StatusOK, status)

	var sections []struct {
		Name    string              `json:"name"`
		Kind    string              `json:"kind"`
		Classes []string            `json:"classes"`
		Streams map[string][]string `json:"streams"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sections))
	require.Len(t, sections, 4)
	assert.Equal(t, "flat", sections[0].Kind)
	assert.Equal(t, []string{"A", "B", "C"}, sections[0].Classes)
	assert.Equal(t, "streamed", sections[3].Kind)
	assert.Equal(t, []string{"Tech-A", "Tech-B"}, sections[3].Streams["Technology"])
}

func TestListStudents_FilterAndPaging(t *testing.T) {
	app, doc := newTestApp(t)

	want := 0
	for _, s := range doc.Students {
		if s.Section == "Advanced" && s.Stream == "Science" {
			want++
		}
	}

	status, env := do(t, app, http.MethodGet, "/api/fixtures/students?section=advanced&stream=Science&per_page=10&page=2")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(want), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)

	var students []model.Student
	require.NoError(t, json.Unmarshal(env.Data, &students))
	assert.Len(t, students, min(10, want-10))
	for _, s := range students {
		assert.Equal(t, "Science", s.Stream)
	}
}

func TestListStudents_OrderedByRegistration(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/fixtures/students?per_page=3")
	require.Equal(t, http.StatusOK, status)

	var students []model.Student
	require.NoError(t, json.Unmarshal(env.Data, &students))
	require.Len(t, students, 3)
	assert.Equal(t, "20240001", students[0].RegistrationNumber)
	assert.Equal(t, "20240003", students[2].RegistrationNumber)
}

func TestListStudents_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/fixtures/students?per_page=9999")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestListStudents_UnknownTaxonomyFilters(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, http.MethodGet, "/api/fixtures/students?stream=Music")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.ErrorCode)
	assert.Contains(t, env.Message, "Music")

	status, env = do(t, app, http.MethodGet, "/api/fixtures/students?section=Kindergarten")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Message, "Kindergarten")

	status, _ = do(t, app, http.MethodGet, "/api/fixtures/students?section=UPPER&stream=technology")
	assert.Equal(t, http.StatusOK, status)
}

func TestGetStudent(t *testing.T) {
	app, doc := newTestApp(t)
	first := doc.StudentsInOrder()[0]

	status, env := do(t, app, http.MethodGet, "/api/fixtures/students/"+first.ID)
	require.Equal(t, http.StatusOK, status)
	var got model.Student
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, first, got)

	status, env = do(t, app, http.MethodGet, "/api/fixtures/students/student-nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)
}

func TestAttendanceEndpoints(t *testing.T) {
	app, doc := newTestApp(t)

	status, env := do(t, app, http.MethodGet, "/api/fixtures/attendance/2024-03-12")
	require.Equal(t, http.StatusOK, status)
	var byClass map[string]model.ClassAttendance
	require.NoError(t, json.Unmarshal(env.Data, &byClass))
	assert.Len(t, byClass, len(doc.Attendance["2024-03-12"]))

	status, env = do(t, app, http.MethodGet, "/api/fixtures/attendance/2024-03-12/Science-A")
	require.Equal(t, http.StatusOK, status)
	var rec model.ClassAttendance
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "2024-03-12_Science-A", rec.ID)
	assert.Equal(t, doc.Attendance["2024-03-12"]["Science-A"].TotalPresent, rec.TotalPresent)

	status, _ = do(t, app, http.MethodGet, "/api/fixtures/attendance/1999-01-01")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/api/fixtures/attendance/2024-03-12/Z")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStats(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/fixtures/stats")
	require.Equal(t, http.StatusOK, status)

	var stats model.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	entry, ok := stats.Cached["stats_2024-03-09_2024-03-15_all_all"]
	require.True(t, ok)
	assert.Equal(t, 7, entry.Data.TotalDays)
}

func TestRegenerate(t *testing.T) {
	app, doc := newTestApp(t)
	before := doc.StudentsInOrder()[0].ID

	status, env := do(t, app, http.MethodPost, "/api/fixtures/regenerate?seed=18")
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "regenerated", env.Message)

	status, env = do(t, app, http.MethodGet, "/api/fixtures/students?per_page=1")
	require.Equal(t, http.StatusOK, status)
	var students []model.Student
	require.NoError(t, json.Unmarshal(env.Data, &students))
	require.Len(t, students, 1)
	assert.NotEqual(t, before, students[0].ID)

	status, _ = do(t, app, http.MethodPost, "/api/fixtures/regenerate?seed=abc")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := do(t, app, http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)
}
