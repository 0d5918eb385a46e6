// file: internals/features/school/attendance/model/student_attendance_mark_model.go
package model

import (
	"time"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

type StudentAttendanceMarkModel struct {
	StudentAttendanceMarkAttendanceID   string     `gorm:"type:varchar(96);primaryKey;column:student_attendance_mark_attendance_id" json:"student_attendance_mark_attendance_id"`
	StudentAttendanceMarkStudentID      string     `gorm:"type:varchar(64);primaryKey;column:student_attendance_mark_student_id"    json:"student_attendance_mark_student_id"`
	StudentAttendanceMarkPresent        bool       `gorm:"not null;column:student_attendance_mark_present"                          json:"student_attendance_mark_present"`
	StudentAttendanceMarkMarkedAt       time.Time  `gorm:"type:timestamptz;not null;column:student_attendance_mark_marked_at"       json:"student_attendance_mark_marked_at"`
	StudentAttendanceMarkMarkedBy       string     `gorm:"type:varchar(255);not null;column:student_attendance_mark_marked_by"      json:"student_attendance_mark_marked_by"`
	StudentAttendanceMarkMarkedTime     dbtime.Tod `gorm:"type:time;not null;column:student_attendance_mark_marked_time"            json:"student_attendance_mark_marked_time"`
	StudentAttendanceMarkNote           *string    `gorm:"type:text;column:student_attendance_mark_note"                            json:"student_attendance_mark_note,omitempty"`
	StudentAttendanceMarkLastModifiedBy string     `gorm:"type:varchar(255);column:student_attendance_mark_last_modified_by"        json:"student_attendance_mark_last_modified_by"`
	StudentAttendanceMarkLastModifiedAt time.Time  `gorm:"type:timestamptz;not null;column:student_attendance_mark_last_modified_at" json:"student_attendance_mark_last_modified_at"`
}

func (StudentAttendanceMarkModel) TableName() string {
	return "student_attendance_marks"
}
