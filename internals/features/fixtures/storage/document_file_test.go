package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func generated(t *testing.T, seed int64) *model.Document {
	t.Helper()
	opts := service.DefaultOptions()
	opts.Location = time.UTC
	g, _ := service.NewSeededGenerator(opts, seed, func() time.Time { return fixedNow }, nil)
	doc, err := g.Generate()
	require.NoError(t, err)
	return doc
}

func TestWriteDocument_Format(t *testing.T) {
	doc := model.NewDocument(map[string]model.User{"u1": {Email: "a<b>@x.lk", Role: "admin", CreatedAt: 1}})
	doc.Students["s1"] = model.Student{ID: "s1", Name: "කසුන් Perera", RegistrationNumber: "20240001", Grade: "Grade 1", Class: "A", Section: "Primary"}

	path := filepath.Join(t.TempDir(), "sample_data.json")
	require.NoError(t, WriteDocument(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.True(t, strings.HasPrefix(text, "{\n  \"users\": {"), text[:40])
	assert.Contains(t, text, "කසුන් Perera")
	assert.Contains(t, text, "a<b>@x.lk")
	assert.NotContains(t, text, `\u`)
	assert.Contains(t, text, `"daily": {}`)
	assert.Contains(t, text, `"monthly": {}`)
	// no stream key for flat-section students
	assert.NotContains(t, text, `"stream"`)
}

func TestWriteDocument_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_data.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 1<<16)), 0o644))

	require.NoError(t, WriteDocument(path, model.NewDocument(nil)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "xxx")
}

func TestWriteDocument_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "sample_data.json")
	err := WriteDocument(path, model.NewDocument(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestRoundTrip(t *testing.T) {
	doc := generated(t, 8)
	path := filepath.Join(t.TempDir(), "sample_data.json")
	require.NoError(t, WriteDocument(path, doc))

	back, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, len(doc.Students), len(back.Students))
	assert.Equal(t, doc.Dates(), back.Dates())
	assert.Equal(t, doc.CacheKeys(), back.CacheKeys())
	for id, s := range doc.Students {
		assert.Equal(t, s, back.Students[id])
	}
	for date, byClass := range doc.Attendance {
		for class, rec := range byClass {
			got := back.Attendance[date][class]
			require.NotNil(t, got)
			assert.Equal(t, rec.TotalPresent, got.TotalPresent)
			assert.Equal(t, len(rec.Records), len(got.Records))
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(generated(t, 31))
	require.NoError(t, err)
	b, err := Encode(generated(t, 31))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReadDocument_NotFound(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorIs(t, err, constants.ErrDocumentNotFound)
}

func TestReadDocument_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := ReadDocument(path)
	assert.Error(t, err)
}
