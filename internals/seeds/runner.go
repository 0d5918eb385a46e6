package seeds

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	fixtureModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	attendanceModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/school/attendance/model"
	studentModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/school/students/model"
	userModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/users/user/model"

	attendance "github.com/Cortana-Devs/SL-SchoolAttendance/internals/seeds/schools/attendance"
	stats "github.com/Cortana-Devs/SL-SchoolAttendance/internals/seeds/schools/stats"
	students "github.com/Cortana-Devs/SL-SchoolAttendance/internals/seeds/schools/students"
	users "github.com/Cortana-Devs/SL-SchoolAttendance/internals/seeds/users/auth"
)

type Options struct {
	UserPassword string
	SkipMigrate  bool
}

// Models lists every table the fixture seeds, in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&attendanceModel.ClassAttendanceModel{},
		&attendanceModel.StudentAttendanceMarkModel{},
		&attendanceModel.AttendanceStatsCacheModel{},
	}
}

// RunAllSeeds migrates the fixture tables and loads doc in one transaction.
func RunAllSeeds(db *gorm.DB, doc *fixtureModel.Document, opts Options, log *zap.Logger) error {
	if !opts.SkipMigrate {
		log.Info("📦 migrating fixture tables")
		if err := db.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		//* Users
		if err := users.SeedUsers(tx, doc, opts.UserPassword, log); err != nil {
			return err
		}

		//* Students
		if err := students.SeedStudents(tx, doc, log); err != nil {
			return err
		}

		//* Attendance
		if err := attendance.SeedAttendance(tx, doc, log); err != nil {
			return err
		}

		//* Stats
		return stats.SeedStats(tx, doc, log)
	})
}
