package models

import (
	"time"
)

// Thread categories, in display order.
const (
	CategoryTraining  = "Training"
	CategoryNutrition = "Nutrition"
	CategoryRecovery  = "Recovery"
	CategoryMindset   = "Mindset"
	CategoryGeneral   = "General"
)

var ThreadCategories = []string{
	CategoryTraining,
	CategoryNutrition,
	CategoryRecovery,
	CategoryMindset,
	CategoryGeneral,
}

type Thread struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Tid          string    `gorm:"uniqueIndex;size:36;not null" json:"tid"` // public uuid
	Title        string    `gorm:"size:100;not null" json:"title"`
	Author       string    `gorm:"size:100;not null" json:"author"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Category     string    `gorm:"size:30;not null;index" json:"category"`
	ReplyCount   int       `gorm:"default:0;not null" json:"reply_count"` // denormalized, tracks replies rows
	Views        int       `gorm:"default:0;not null" json:"views"`
	LastActivity time.Time `gorm:"index" json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
}

func IsThreadCategory(category string) bool {
	for _, c := range ThreadCategories {
		if c == category {
			return true
		}
	}
	return false
}
