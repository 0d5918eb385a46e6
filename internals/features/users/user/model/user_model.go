package model

import (
	"time"
)

// UserModel is a seeded staff account.
type UserModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey;column:id" json:"id"`
	Email     string    `gorm:"size:255;unique;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;column:role" json:"role"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;column:updated_at" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
