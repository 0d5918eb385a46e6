package service

import (
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/dto"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
)

func Summarize(doc *model.Document) dto.FixtureSummary {
	sum := dto.FixtureSummary{
		Students:          len(doc.Students),
		StudentsBySection: map[string]int{},
		Dates:             doc.Dates(),
		CacheKeys:         doc.CacheKeys(),
	}
	for _, s := range doc.Students {
		sum.StudentsBySection[s.Section]++
	}
	sum.Sections = len(sum.StudentsBySection)
	for _, byClass := range doc.Attendance {
		for _, rec := range byClass {
			sum.ClassRecords++
			sum.Marks += len(rec.Records)
			sum.TotalPresent += rec.TotalPresent
			sum.TotalAbsent += rec.TotalAbsent
		}
	}
	return sum
}
