package models

import (
	"time"
)

// Wall tags, in the order the picker lists them.
const (
	TagFeedback   = "Feedback"
	TagAdvice     = "Advice"
	TagSuggestion = "Suggestion"
	TagOther      = "Other"
)

var WallTags = []string{TagFeedback, TagAdvice, TagSuggestion, TagOther}

// WallPost is a message on the community wall shown on the home page.
type WallPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email"` // Optional
	Tag       string    `gorm:"size:20;not null" json:"tag"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (WallPost) TableName() string {
	return "forum_details"
}

func IsWallTag(tag string) bool {
	for _, t := range WallTags {
		if t == tag {
			return true
		}
	}
	return false
}
