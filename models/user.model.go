package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles
const (
	RoleStudent = "STUDENT"
	RoleCoach   = "COACH"
	RoleAdmin   = "ADMIN"
)

// Account statuses
const (
	AccountActive    = "ACTIVE"
	AccountSuspended = "SUSPENDED"
	AccountBanned    = "BANNED"
	AccountFlagged   = "FLAGGED"
)

type User struct {
	gorm.Model
	ProfileImage        string     `gorm:"default:''" json:"profileImage"`
	Name                string     `gorm:"default:''" json:"name"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Role                string     `gorm:"default:'STUDENT'" json:"role"` // STUDENT, COACH, ADMIN
	Status              string     `gorm:"default:'ACTIVE'" json:"status"`
	Password            string     `gorm:"not null" json:"-"`
	IsEmailVerified     bool       `gorm:"default:false" json:"isEmailVerified"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"lastLogin"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"isDeleted"`
}
