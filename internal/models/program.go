package models

import (
	"time"
)

// Program is a card in the program grid. Only available programs open a
// workout-plan viewer; the rest are teasers.
type Program struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"size:50;not null;uniqueIndex" json:"slug"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	GlowColor   string    `gorm:"size:40" json:"glow_color"`
	BorderGlow  string    `gorm:"size:40" json:"border_glow"`
	Position    int       `gorm:"default:0" json:"position"`
	Available   bool      `gorm:"default:false" json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
