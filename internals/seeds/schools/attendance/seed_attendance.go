package attendance

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	attendanceModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/school/attendance/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

const batchSize = 1000

// BuildAttendanceRows flattens date → class → records into register rows and
// mark rows, ordered by (date, class) and student id.
func BuildAttendanceRows(doc *model.Document) ([]attendanceModel.ClassAttendanceModel, []attendanceModel.StudentAttendanceMarkModel, error) {
	var (
		registers []attendanceModel.ClassAttendanceModel
		marks     []attendanceModel.StudentAttendanceMarkModel
	)

	for _, date := range doc.Dates() {
		day, err := dbtime.ParseDate(date, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("attendance date %q: %w", date, err)
		}

		byClass := doc.Attendance[date]
		classes := make([]string, 0, len(byClass))
		for class := range byClass {
			classes = append(classes, class)
		}
		sort.Strings(classes)

		for _, class := range classes {
			rec := byClass[class]
			registers = append(registers, attendanceModel.ClassAttendanceModel{
				ClassAttendanceID:            rec.ID,
				ClassAttendanceDate:          day,
				ClassAttendanceClass:         rec.Class,
				ClassAttendanceGrade:         rec.Grade,
				ClassAttendanceSection:       rec.Section,
				ClassAttendanceTotalPresent:  rec.TotalPresent,
				ClassAttendanceTotalAbsent:   rec.TotalAbsent,
				ClassAttendanceSubmitted:     rec.Submitted,
				ClassAttendanceSubmittedBy:   rec.SubmittedBy,
				ClassAttendanceSchoolDayType: rec.SchoolDayType,
				ClassAttendancePeriod:        rec.Period,
				ClassAttendanceAcademicYear:  rec.AcademicYear,
				ClassAttendanceLastModified:  time.UnixMilli(rec.LastModified),
			})

			ids := make([]string, 0, len(rec.Records))
			for id := range rec.Records {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				m := rec.Records[id]
				var note *string
				if m.Note != "" {
					n := m.Note
					note = &n
				}
				marks = append(marks, attendanceModel.StudentAttendanceMarkModel{
					StudentAttendanceMarkAttendanceID:   rec.ID,
					StudentAttendanceMarkStudentID:      id,
					StudentAttendanceMarkPresent:        m.Present,
					StudentAttendanceMarkMarkedAt:       time.UnixMilli(m.Timestamp),
					StudentAttendanceMarkMarkedBy:       m.MarkedBy,
					StudentAttendanceMarkMarkedTime:     m.MarkedTime,
					StudentAttendanceMarkNote:           note,
					StudentAttendanceMarkLastModifiedBy: m.LastModifiedBy,
					StudentAttendanceMarkLastModifiedAt: time.UnixMilli(m.LastModifiedAt),
				})
			}
		}
	}
	return registers, marks, nil
}

func SeedAttendance(tx *gorm.DB, doc *model.Document, log *zap.Logger) error {
	registers, marks, err := BuildAttendanceRows(doc)
	if err != nil {
		return err
	}
	if len(registers) == 0 {
		return nil
	}

	res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&registers, batchSize)
	if res.Error != nil {
		return fmt.Errorf("insert class attendances: %w", res.Error)
	}
	log.Info("✅ class attendances seeded", zap.Int("rows", len(registers)), zap.Int64("inserted", res.RowsAffected))

	if len(marks) == 0 {
		return nil
	}
	res = tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&marks, batchSize)
	if res.Error != nil {
		return fmt.Errorf("insert attendance marks: %w", res.Error)
	}
	log.Info("✅ attendance marks seeded", zap.Int("rows", len(marks)), zap.Int64("inserted", res.RowsAffected))
	return nil
}
