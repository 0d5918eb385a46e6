package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/service"
)

func TestBuildAttendanceRows_Generated(t *testing.T) {
	opts := service.DefaultOptions()
	opts.Location = time.UTC
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	g, _ := service.NewSeededGenerator(opts, 12, func() time.Time { return now }, nil)
	doc, err := g.Generate()
	require.NoError(t, err)

	registers, marks, err := BuildAttendanceRows(doc)
	require.NoError(t, err)

	assert.Len(t, registers, 12*7)
	assert.Len(t, marks, len(doc.Students)*7)

	assert.Equal(t, "2024-03-09_A", registers[0].ClassAttendanceID)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), registers[0].ClassAttendanceDate)

	present := 0
	for _, r := range registers {
		present += r.ClassAttendanceTotalPresent
	}
	markPresent := 0
	for _, m := range marks {
		if m.StudentAttendanceMarkPresent {
			markPresent++
		}
		assert.Nil(t, m.StudentAttendanceMarkNote)
		assert.Equal(t, "08:00:00", m.StudentAttendanceMarkMarkedTime.String())
	}
	assert.Equal(t, present, markPresent)
}

func TestBuildAttendanceRows_BadDate(t *testing.T) {
	doc := model.NewDocument(nil)
	doc.Attendance["15/03/2024"] = map[string]*model.ClassAttendance{}
	_, _, err := BuildAttendanceRows(doc)
	assert.Error(t, err)
}

func TestBuildAttendanceRows_Note(t *testing.T) {
	doc := model.NewDocument(nil)
	doc.Attendance["2024-03-15"] = map[string]*model.ClassAttendance{
		"A": {ID: "2024-03-15_A", Class: "A", TotalAbsent: 1, Records: map[string]model.Mark{
			"s1": {Present: false, Note: "sick"},
		}},
	}
	_, marks, err := BuildAttendanceRows(doc)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	require.NotNil(t, marks[0].StudentAttendanceMarkNote)
	assert.Equal(t, "sick", *marks[0].StudentAttendanceMarkNote)
}
