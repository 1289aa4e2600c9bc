package models

import (
	"coursehub/moderation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Review is a student's review of a course. The composite unique index on
// (course_id, user_id) enforces one review per user per course at the store
// level; the insert path treats the resulting duplicate-key error as a
// conflict instead of racing a pre-insert existence check.
type Review struct {
	gorm.Model
	CourseID uint   `gorm:"not null;index;uniqueIndex:idx_review_course_user" json:"courseId"`
	UserID   uint   `gorm:"not null;index;uniqueIndex:idx_review_course_user" json:"userId"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string `gorm:"type:text" json:"comment"`

	// Tri-state votes: nil means unanswered
	WorthInvestment *bool `json:"worthInvestment"`
	RecommendFriend *bool `json:"recommendFriend"`

	// Up to three tags drawn from the fixed vocabularies
	Tags datatypes.JSON `json:"tags"`

	Status    moderation.Status `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	AdminNote string            `gorm:"type:text" json:"adminNote"`
	IsDeleted bool              `gorm:"default:false" json:"isDeleted"`

	// Associations - omit in JSON list unless Preloaded
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TagList returns the review's tags as a plain slice
func (r *Review) TagList() []string {
	return FromJSONList(r.Tags)
}
