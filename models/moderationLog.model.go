package models

import "gorm.io/gorm"

// Entity types recorded in the moderation log
const (
	EntityCourse = "COURSE"
	EntityReview = "REVIEW"
	EntityUser   = "USER"
)

// ModerationLog is an append-only record of every applied moderation or
// account decision. The status columns on Course/Review/User remain the
// current-state projection; this table keeps the history they lose.
type ModerationLog struct {
	gorm.Model
	EntityType string `gorm:"size:20;not null;index" json:"entityType"` // COURSE, REVIEW, USER
	EntityID   uint   `gorm:"not null;index" json:"entityId"`
	ActorID    uint   `gorm:"not null;index" json:"actorId"`
	FromStatus string `gorm:"size:20" json:"fromStatus"`
	ToStatus   string `gorm:"size:20;not null" json:"toStatus"`
	Note       string `gorm:"type:text" json:"note"`
}
