package students

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fixtureModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/school/students/model"
)

const batchSize = 500

// BuildStudentRows maps students to rows in registration order.
func BuildStudentRows(doc *fixtureModel.Document) []model.StudentModel {
	ordered := doc.StudentsInOrder()
	rows := make([]model.StudentModel, 0, len(ordered))
	for _, s := range ordered {
		var stream *string
		if s.Stream != "" {
			v := s.Stream
			stream = &v
		}
		rows = append(rows, model.StudentModel{
			StudentID:                 s.ID,
			StudentName:               s.Name,
			StudentRegistrationNumber: s.RegistrationNumber,
			StudentGrade:              s.Grade,
			StudentClass:              s.Class,
			StudentStream:             stream,
			StudentSection:            s.Section,
			StudentCreatedAt:          time.UnixMilli(s.CreatedAt),
			StudentUpdatedAt:          time.UnixMilli(s.UpdatedAt),
		})
	}
	return rows
}

func SeedStudents(tx *gorm.DB, doc *fixtureModel.Document, log *zap.Logger) error {
	rows := BuildStudentRows(doc)
	if len(rows) == 0 {
		return nil
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, batchSize)
	if res.Error != nil {
		return fmt.Errorf("insert students: %w", res.Error)
	}
	log.Info("✅ students seeded", zap.Int("rows", len(rows)), zap.Int64("inserted", res.RowsAffected))
	return nil
}
