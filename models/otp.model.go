package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP purposes
const (
	OTPPurposeVerifyEmail   = "VERIFY_EMAIL"
	OTPPurposeResetPassword = "RESET_PASSWORD"
)

type OTP struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Email     string    `gorm:"size:100;index" json:"email,omitempty"`
	Code      string    `gorm:"size:6;not null" json:"code"`
	Purpose   string    `gorm:"size:30;not null" json:"purpose"` // VERIFY_EMAIL, RESET_PASSWORD
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	IsDeleted bool      `gorm:"default:false"`
}
