package services

import (
	"fmt"
	"strings"
	"valhalla/internal/db"
	"valhalla/internal/models"
)

type WallPostInput struct {
	Name    string
	Email   string
	Tag     string
	Message string
}

// ValidateWallPost checks fields in form order and reports the first gap.
func ValidateWallPost(in WallPostInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter your name"}
	}
	if strings.TrimSpace(in.Message) == "" {
		return &ValidationError{Field: "message", Message: "Please enter a message"}
	}
	if !models.IsWallTag(in.Tag) {
		return &ValidationError{Field: "tag", Message: "Please select a tag"}
	}
	return nil
}

// ListWallPosts returns every wall post, newest first.
func ListWallPosts() ([]models.WallPost, error) {
	var posts []models.WallPost
	if err := db.DB.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list wall posts: %w", err)
	}
	return posts, nil
}

// CreateWallPost validates and inserts. Invalid input never reaches the DB.
func CreateWallPost(in WallPostInput) (*models.WallPost, error) {
	if err := ValidateWallPost(in); err != nil {
		return nil, err
	}

	post := models.WallPost{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Tag:     in.Tag,
		Comment: strings.TrimSpace(in.Message),
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
