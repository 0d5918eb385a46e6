package stats

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	attendanceModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/school/attendance/model"
)

// BuildStatsRows maps cached stats entries to rows ordered by key.
func BuildStatsRows(doc *model.Document) ([]attendanceModel.AttendanceStatsCacheModel, error) {
	rows := make([]attendanceModel.AttendanceStatsCacheModel, 0, len(doc.Stats.Cached))
	for _, key := range doc.CacheKeys() {
		entry := doc.Stats.Cached[key]
		byDate, err := sonic.ConfigStd.Marshal(entry.Data.ByDate)
		if err != nil {
			return nil, fmt.Errorf("encode by_date for %s: %w", key, err)
		}
		rows = append(rows, attendanceModel.AttendanceStatsCacheModel{
			AttendanceStatsCacheKey:               key,
			AttendanceStatsCacheTotalPresent:      entry.Data.TotalPresent,
			AttendanceStatsCacheTotalAbsent:       entry.Data.TotalAbsent,
			AttendanceStatsCacheTotalDays:         entry.Data.TotalDays,
			AttendanceStatsCacheTotalLate:         entry.Data.TotalLate,
			AttendanceStatsCacheTotalExcused:      entry.Data.TotalExcused,
			AttendanceStatsCacheAverageAttendance: entry.Data.AverageAttendance,
			AttendanceStatsCacheByDate:            datatypes.JSON(byDate),
			AttendanceStatsCacheGeneratedAt:       time.UnixMilli(entry.Data.GeneratedAt),
			AttendanceStatsCacheGeneratedBy:       entry.Data.GeneratedBy,
			AttendanceStatsCacheTimestamp:         time.UnixMilli(entry.Timestamp),
		})
	}
	return rows, nil
}

// SeedStats upserts cache entries; a re-run replaces the aggregates for the same key.
func SeedStats(tx *gorm.DB, doc *model.Document, log *zap.Logger) error {
	rows, err := BuildStatsRows(doc)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_stats_cache_key"}},
		UpdateAll: true,
	}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("upsert stats cache: %w", res.Error)
	}
	log.Info("✅ stats cache seeded", zap.Int("rows", len(rows)))
	return nil
}
