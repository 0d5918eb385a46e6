package service

import (
	"strconv"
	"time"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

// GenerateAttendance marks every student on every day.
//
// Records are keyed by class name only, so a class name shared by several grades
// collects all of their students; grade and section come from the first student
// seen for that class on that day.
func (g *Generator) GenerateAttendance(students []model.Student, days []time.Time) map[string]map[string]*model.ClassAttendance {
	out := make(map[string]map[string]*model.ClassAttendance, len(days))
	academicYear := ""
	if len(days) > 0 {
		academicYear = strconv.Itoa(days[0].Year())
	}

	for _, day := range days {
		date := dbtime.DateKey(day)
		byClass := map[string]*model.ClassAttendance{}
		out[date] = byClass

		for _, s := range students {
			rec, ok := byClass[s.Class]
			if !ok {
				rec = &model.ClassAttendance{
					ID:            date + "_" + s.Class,
					Date:          date,
					Class:         s.Class,
					Grade:         s.Grade,
					Section:       s.Section,
					Records:       map[string]model.Mark{},
					LastModified:  g.stamp(day),
					Submitted:     true,
					SubmittedBy:   constants.TeacherEmail,
					SchoolDayType: constants.SchoolDayRegular,
					Period:        constants.PeriodMorning,
					AcademicYear:  academicYear,
				}
				byClass[s.Class] = rec
			}

			present := g.rng.Float64() < g.opts.PresenceRate
			ts := g.stamp(day)
			rec.Records[s.ID] = model.Mark{
				Present:        present,
				Timestamp:      ts,
				MarkedBy:       constants.TeacherEmail,
				MarkedTime:     g.opts.MarkedTime,
				Note:           "",
				LastModifiedBy: constants.TeacherEmail,
				LastModifiedAt: ts,
			}
			if present {
				rec.TotalPresent++
			} else {
				rec.TotalAbsent++
			}
		}
	}
	return out
}

// stamp is the generation clock, or the day's mark time when backdating.
func (g *Generator) stamp(day time.Time) int64 {
	if g.opts.BackdateTimestamps {
		return dbtime.At(day, g.opts.MarkedTime, g.opts.Location).UnixMilli()
	}
	return g.nowMillis()
}
