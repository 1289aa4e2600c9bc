package models

import (
	"encoding/json"

	"coursehub/moderation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is a course submission. It stays invisible to the public catalog
// until an admin approves it. The partial unique index on
// (course_name, coach_name) keeps one live submission per course per coach at
// the store level; deleted rows are excluded so a removed course can be
// submitted again.
type Course struct {
	gorm.Model
	CourseName   string            `gorm:"not null;uniqueIndex:idx_course_name_coach,where:is_deleted = false" json:"courseName"`
	CoachName    string            `gorm:"not null;uniqueIndex:idx_course_name_coach" json:"coachName"`
	Category     string            `gorm:"not null;index" json:"category"`
	CourseURL    string            `json:"courseUrl"`
	ThumbnailURL string            `json:"thumbnailUrl"`
	AboutCourse  string            `gorm:"type:text" json:"aboutCourse"`
	Status       moderation.Status `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	IsFeatured   bool              `gorm:"default:false" json:"isFeatured"`
	AdminNote    string            `gorm:"type:text" json:"adminNote"`
	SubmittedBy  uint              `gorm:"not null;index" json:"submittedBy"`

	// Placeholder pros/cons baked in at creation time, shown until the first
	// review is approved.
	PlaceholderPros datatypes.JSON `json:"placeholderPros"`
	PlaceholderCons datatypes.JSON `json:"placeholderCons"`

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`

	Reviews []Review `gorm:"foreignKey:CourseID" json:"reviews,omitempty"`
}

// ToJSONList marshals a string slice for a datatypes.JSON column
func ToJSONList(items []string) datatypes.JSON {
	data, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

// FromJSONList unmarshals a datatypes.JSON column back to a string slice
func FromJSONList(data datatypes.JSON) []string {
	var items []string
	if len(data) == 0 {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}
