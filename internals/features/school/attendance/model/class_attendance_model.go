// file: internals/features/school/attendance/model/class_attendance_model.go
package model

import "time"

// ClassAttendanceModel is one submitted class-day register.
type ClassAttendanceModel struct {
	ClassAttendanceID            string    `gorm:"type:varchar(96);primaryKey;column:class_attendance_id"            json:"class_attendance_id"`
	ClassAttendanceDate          time.Time `gorm:"type:date;not null;index;column:class_attendance_date"             json:"class_attendance_date"`
	ClassAttendanceClass         string    `gorm:"type:varchar(32);not null;column:class_attendance_class"           json:"class_attendance_class"`
	ClassAttendanceGrade         string    `gorm:"type:varchar(32);not null;column:class_attendance_grade"           json:"class_attendance_grade"`
	ClassAttendanceSection       string    `gorm:"type:varchar(32);not null;column:class_attendance_section"         json:"class_attendance_section"`
	ClassAttendanceTotalPresent  int       `gorm:"not null;default:0;column:class_attendance_total_present"          json:"class_attendance_total_present"`
	ClassAttendanceTotalAbsent   int       `gorm:"not null;default:0;column:class_attendance_total_absent"           json:"class_attendance_total_absent"`
	ClassAttendanceSubmitted     bool      `gorm:"not null;default:false;column:class_attendance_submitted"          json:"class_attendance_submitted"`
	ClassAttendanceSubmittedBy   string    `gorm:"type:varchar(255);column:class_attendance_submitted_by"            json:"class_attendance_submitted_by"`
	ClassAttendanceSchoolDayType string    `gorm:"type:varchar(24);not null;default:'Regular';column:class_attendance_school_day_type" json:"class_attendance_school_day_type"`
	ClassAttendancePeriod        string    `gorm:"type:varchar(16);not null;default:'Morning';column:class_attendance_period" json:"class_attendance_period"`
	ClassAttendanceAcademicYear  string    `gorm:"type:varchar(8);not null;column:class_attendance_academic_year"    json:"class_attendance_academic_year"`
	ClassAttendanceLastModified  time.Time `gorm:"type:timestamptz;not null;column:class_attendance_last_modified"   json:"class_attendance_last_modified"`
}

func (ClassAttendanceModel) TableName() string {
	return "class_attendances"
}
