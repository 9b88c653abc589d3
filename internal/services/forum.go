package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"
	"valhalla/internal/db"
	"valhalla/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TitleMinLen   = 5
	TitleMaxLen   = 100
	ContentMinLen = 20
	ContentMaxLen = 2000
	ReplyMaxLen   = 2000
)

var ErrThreadNotFound = errors.New("thread not found")

type ThreadInput struct {
	Title    string
	Author   string
	Content  string
	Category string
}

type ReplyInput struct {
	Author  string
	Content string
}

// ValidateThread returns nil or one message per offending field.
func ValidateThread(in ThreadInput) FieldErrors {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(strings.TrimSpace(in.Title)); n < TitleMinLen || n > TitleMaxLen {
		errs["title"] = fmt.Sprintf("Title must be between %d and %d characters", TitleMinLen, TitleMaxLen)
	}
	if strings.TrimSpace(in.Author) == "" {
		errs["author"] = "Please enter your name"
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.Content)); n < ContentMinLen || n > ContentMaxLen {
		errs["content"] = fmt.Sprintf("Content must be between %d and %d characters", ContentMinLen, ContentMaxLen)
	}
	if !models.IsThreadCategory(in.Category) {
		errs["category"] = "Please select a category"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateReply(in ReplyInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Author) == "" {
		errs["author"] = "Please enter your name"
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		errs["content"] = "Please enter a reply"
	} else if utf8.RuneCountInString(content) > ReplyMaxLen {
		errs["content"] = fmt.Sprintf("Reply must be at most %d characters", ReplyMaxLen)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListThreads returns threads by last activity, newest first. An empty or
// unknown category lists everything.
func ListThreads(category string) ([]models.Thread, error) {
	query := db.DB.Order("last_activity DESC, id DESC")
	if models.IsThreadCategory(category) {
		query = query.Where("category = ?", category)
	}

	var threads []models.Thread
	if err := query.Find(&threads).Error; err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	return threads, nil
}

func CreateThread(in ThreadInput) (*models.Thread, error) {
	if errs := ValidateThread(in); errs != nil {
		return nil, errs
	}

	now := time.Now()
	thread := models.Thread{
		Tid:          uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Author:       strings.TrimSpace(in.Author),
		Content:      strings.TrimSpace(in.Content),
		Category:     in.Category,
		LastActivity: now,
		CreatedAt:    now,
	}
	if err := db.DB.Create(&thread).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

func FindThread(tid string) (*models.Thread, error) {
	var thread models.Thread
	if err := db.DB.Where("tid = ?", tid).First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

// ListReplies returns replies in submission order.
func ListReplies(threadID uint) ([]models.Reply, error) {
	var replies []models.Reply
	if err := db.DB.Where("thread_id = ?", threadID).Order("created_at ASC, id ASC").Find(&replies).Error; err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}

// OpenThread loads a thread for display and counts the view. The stored
// counter is bumped best-effort; the returned copy always shows one more
// view than was loaded.
func OpenThread(tid string) (*models.Thread, []models.Reply, error) {
	thread, err := FindThread(tid)
	if err != nil {
		return nil, nil, err
	}

	if err := db.DB.Model(&models.Thread{}).Where("id = ?", thread.ID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		log.Printf("forum: failed to count view for thread %s: %v", thread.Tid, err)
	}
	thread.Views++

	replies, err := ListReplies(thread.ID)
	if err != nil {
		return nil, nil, err
	}
	return thread, replies, nil
}

// AddReply appends a reply and bumps the parent's reply count and last
// activity in one transaction. On success thread reflects the new counts.
func AddReply(thread *models.Thread, in ReplyInput) (*models.Reply, error) {
	if errs := ValidateReply(in); errs != nil {
		return nil, errs
	}

	now := time.Now()
	reply := models.Reply{
		ThreadID:  thread.ID,
		Author:    strings.TrimSpace(in.Author),
		Content:   strings.TrimSpace(in.Content),
		CreatedAt: now,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return fmt.Errorf("insert reply: %w", err)
		}

		res := tx.Model(&models.Thread{}).Where("id = ?", thread.ID).Updates(map[string]interface{}{
			"reply_count":   gorm.Expr("reply_count + ?", 1),
			"last_activity": now,
		})
		if res.Error != nil {
			return fmt.Errorf("update thread counters: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrThreadNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	thread.ReplyCount++
	thread.LastActivity = now
	return &reply, nil
}
