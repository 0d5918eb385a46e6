// file: internals/features/school/students/model/student_model.go
package model

import "time"

type StudentModel struct {
	StudentID                 string    `gorm:"type:varchar(64);primaryKey;column:student_id"                   json:"student_id"`
	StudentName               string    `gorm:"type:varchar(120);not null;column:student_name"                  json:"student_name"`
	StudentRegistrationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex;column:student_registration_number" json:"student_registration_number"`
	StudentGrade              string    `gorm:"type:varchar(32);not null;index:idx_student_placement;column:student_grade" json:"student_grade"`
	StudentClass              string    `gorm:"type:varchar(32);not null;index:idx_student_placement;column:student_class" json:"student_class"`
	StudentStream             *string   `gorm:"type:varchar(32);column:student_stream"                          json:"student_stream,omitempty"`
	StudentSection            string    `gorm:"type:varchar(32);not null;column:student_section"                json:"student_section"`
	StudentCreatedAt          time.Time `gorm:"type:timestamptz;not null;column:student_created_at"             json:"student_created_at"`
	StudentUpdatedAt          time.Time `gorm:"type:timestamptz;not null;column:student_updated_at"             json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
