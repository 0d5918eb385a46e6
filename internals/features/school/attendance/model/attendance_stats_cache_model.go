// file: internals/features/school/attendance/model/attendance_stats_cache_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceStatsCacheModel is a precomputed aggregate keyed by window and scope.
type AttendanceStatsCacheModel struct {
	AttendanceStatsCacheKey               string         `gorm:"type:varchar(128);primaryKey;column:attendance_stats_cache_key"        json:"attendance_stats_cache_key"`
	AttendanceStatsCacheTotalPresent      int            `gorm:"not null;column:attendance_stats_cache_total_present"                  json:"attendance_stats_cache_total_present"`
	AttendanceStatsCacheTotalAbsent       int            `gorm:"not null;column:attendance_stats_cache_total_absent"                   json:"attendance_stats_cache_total_absent"`
	AttendanceStatsCacheTotalDays         int            `gorm:"not null;column:attendance_stats_cache_total_days"                     json:"attendance_stats_cache_total_days"`
	AttendanceStatsCacheTotalLate         int            `gorm:"not null;default:0;column:attendance_stats_cache_total_late"           json:"attendance_stats_cache_total_late"`
	AttendanceStatsCacheTotalExcused      int            `gorm:"not null;default:0;column:attendance_stats_cache_total_excused"        json:"attendance_stats_cache_total_excused"`
	AttendanceStatsCacheAverageAttendance int            `gorm:"not null;column:attendance_stats_cache_average_attendance"             json:"attendance_stats_cache_average_attendance"`
	AttendanceStatsCacheByDate            datatypes.JSON `gorm:"type:jsonb;not null;column:attendance_stats_cache_by_date"             json:"attendance_stats_cache_by_date"`
	AttendanceStatsCacheGeneratedAt       time.Time      `gorm:"type:timestamptz;not null;column:attendance_stats_cache_generated_at"  json:"attendance_stats_cache_generated_at"`
	AttendanceStatsCacheGeneratedBy       string         `gorm:"type:varchar(255);column:attendance_stats_cache_generated_by"          json:"attendance_stats_cache_generated_by"`
	AttendanceStatsCacheTimestamp         time.Time      `gorm:"type:timestamptz;not null;column:attendance_stats_cache_timestamp"     json:"attendance_stats_cache_timestamp"`
}

func (AttendanceStatsCacheModel) TableName() string {
	return "attendance_stats_caches"
}
