package user

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/constants"
	fixtureModel "github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/fixtures/model"
	"github.com/Cortana-Devs/SL-SchoolAttendance/internals/features/users/user/model"
)

// HashPassword hashes with bcrypt at the given cost (0 = bcrypt.DefaultCost).
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BuildUserRows maps the fixture accounts to rows sorted by id; hash is stored as-is.
// An account with a role outside constants.AllRoles is rejected.
func BuildUserRows(doc *fixtureModel.Document, hash string) ([]model.UserModel, error) {
	rows := make([]model.UserModel, 0, len(doc.Users))
	for uid, u := range doc.Users {
		if !constants.IsKnownRole(u.Role) {
			return nil, fmt.Errorf("user %s: %w: %q", uid, constants.ErrUnknownRole, u.Role)
		}
		created := time.UnixMilli(u.CreatedAt)
		rows = append(rows, model.UserModel{
			ID:        uid,
			Email:     u.Email,
			Password:  hash,
			Role:      u.Role,
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// SeedUsers inserts the seed accounts; existing emails are left untouched.
func SeedUsers(tx *gorm.DB, doc *fixtureModel.Document, password string, log *zap.Logger) error {
	hash, err := HashPassword(password, 0)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	rows, err := BuildUserRows(doc, hash)
	if err != nil {
		return err
	}

	for _, u := range rows {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&u)
		if res.Error != nil {
			return fmt.Errorf("insert user %s: %w", u.Email, res.Error)
		}
		if res.RowsAffected == 0 {
			log.Info("ℹ️ user already exists, skipped", zap.String("email", u.Email))
			continue
		}
		log.Info("✅ user inserted", zap.String("email", u.Email))
	}
	return nil
}
