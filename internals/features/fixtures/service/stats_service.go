package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/helpers/dbtime"
)

// CacheKey encodes the window and the (class, grade) scope.
func CacheKey(start, end string) string {
	return fmt.Sprintf("stats_%s_%s_%s_%s", start, end, constants.StatsScopeAll, constants.StatsScopeAll)
}

// AverageAttendance is round(100·present/(present+absent)), halves to even; 0 with no marks.
func AverageAttendance(present, absent int) int {
	total := present + absent
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(present) / float64(total) * 100))
}

// ComputeStats aggregates the window (days newest first) into one cache entry.
func (g *Generator) ComputeStats(attendance map[string]map[string]*model.ClassAttendance, days []time.Time) (string, model.CachedStats) {
	var start, end string
	if len(days) > 0 {
		end = dbtime.DateKey(days[0])
		start = dbtime.DateKey(days[len(days)-1])
	}

	data := model.StatsData{
		TotalDays: len(days),
		ByDate:    make(map[string]model.DayBreakdown, len(days)),
	}
	for _, day := range days {
		date := dbtime.DateKey(day)
		var b model.DayBreakdown
		for _, rec := range attendance[date] {
			b.Present += rec.TotalPresent
			b.Absent += rec.TotalAbsent
		}
		data.ByDate[date] = b
		data.TotalPresent += b.Present
		data.TotalAbsent += b.Absent
	}
	data.AverageAttendance = AverageAttendance(data.TotalPresent, data.TotalAbsent)
	data.GeneratedAt = g.nowMillis()
	data.GeneratedBy = constants.TeacherEmail

	return CacheKey(start, end), model.CachedStats{Data: data, Timestamp: g.nowMillis()}
}
