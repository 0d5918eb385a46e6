package dto

import (
	"strings"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
)

// StudentListQuery filters GET /students. Empty fields match everything.
type StudentListQuery struct {
	Section string `query:"section" validate:"omitempty,max=64"`
	Grade   string `query:"grade"   validate:"omitempty,max=64"`
	Class   string `query:"class"   validate:"omitempty,max=64"`
	Stream  string `query:"stream"  validate:"omitempty,max=64"`
	Page    int    `query:"page"     validate:"omitempty,gte=1"`
	PerPage int    `query:"per_page" validate:"omitempty,gte=1,lte=500"`
}

func (q StudentListQuery) Matches(s model.Student) bool {
	return eqFold(q.Section, s.Section) &&
		eqFold(q.Grade, s.Grade) &&
		eqFold(q.Class, s.Class) &&
		eqFold(q.Stream, s.Stream)
}

func eqFold(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, got)
}
