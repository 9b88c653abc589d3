package services

import (
	"errors"
	"strings"
	"testing"
	"time"
	"valhalla/internal/db"
	"valhalla/internal/models"

	"gorm.io/gorm"
)

func validThread() ThreadInput {
	return ThreadInput{
		Title:    "Deadlift form check",
		Author:   "Ragna",
		Content:  "My lower back rounds on the last rep of every set.",
		Category: models.CategoryTraining,
	}
}

func TestValidateThread(t *testing.T) {
	if errs := ValidateThread(validThread()); errs != nil {
		t.Fatalf("expected valid thread, got %v", errs)
	}

	tests := []struct {
		name   string
		mutate func(*ThreadInput)
		field  string
	}{
		{"short title", func(in *ThreadInput) { in.Title = "Legs" }, "title"},
		{"long title", func(in *ThreadInput) { in.Title = strings.Repeat("a", 101) }, "title"},
		{"padded short title", func(in *ThreadInput) { in.Title = "   ab   " }, "title"},
		{"short content", func(in *ThreadInput) { in.Content = "Too short" }, "content"},
		{"long content", func(in *ThreadInput) { in.Content = strings.Repeat("x", 2001) }, "content"},
		{"no category", func(in *ThreadInput) { in.Category = "" }, "category"},
		{"unknown category", func(in *ThreadInput) { in.Category = "Memes" }, "category"},
		{"no author", func(in *ThreadInput) { in.Author = " " }, "author"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validThread()
			tt.mutate(&in)
			errs := ValidateThread(in)
			if _, ok := errs[tt.field]; !ok || len(errs) != 1 {
				t.Errorf("expected exactly one error on %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateThreadBoundaries(t *testing.T) {
	in := validThread()
	in.Title = strings.Repeat("ᚱ", 5)
	in.Content = strings.Repeat("c", 2000)
	if errs := ValidateThread(in); errs != nil {
		t.Errorf("expected boundary lengths to pass, got %v", errs)
	}

	in.Title = strings.Repeat("t", 100)
	in.Content = strings.Repeat("c", 20)
	if errs := ValidateThread(in); errs != nil {
		t.Errorf("expected boundary lengths to pass, got %v", errs)
	}
}

func TestCreateThreadRejectsInvalidWithoutWrite(t *testing.T) {
	setupTestDB(t)

	in := validThread()
	in.Title = "Hey"
	_, err := CreateThread(in)

	var fe FieldErrors
	if !errors.As(err, &fe) || fe["title"] == "" {
		t.Fatalf("expected title field error, got %v", err)
	}

	var count int64
	db.DB.Model(&models.Thread{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no threads written, got %d", count)
	}
}

func TestListThreadsOrderAndFilter(t *testing.T) {
	setupTestDB(t)

	old, _ := CreateThread(validThread())
	db.DB.Model(old).UpdateColumn("last_activity", time.Now().Add(-2*time.Hour))

	in := validThread()
	in.Title = "Protein timing"
	in.Category = models.CategoryNutrition
	CreateThread(in)

	all, err := ListThreads("")
	if err != nil {
		t.Fatalf("ListThreads failed: %v", err)
	}
	if len(all) != 2 || all[0].Title != "Protein timing" {
		t.Fatalf("expected most recent activity first, got %+v", all)
	}

	nutrition, _ := ListThreads(models.CategoryNutrition)
	if len(nutrition) != 1 || nutrition[0].Category != models.CategoryNutrition {
		t.Errorf("expected only nutrition threads, got %+v", nutrition)
	}

	unknown, _ := ListThreads("Memes")
	if len(unknown) != 2 {
		t.Errorf("unknown category should list all threads, got %d", len(unknown))
	}
}

func TestOpenThreadCountsOneView(t *testing.T) {
	setupTestDB(t)
	created, _ := CreateThread(validThread())

	thread, replies, err := OpenThread(created.Tid)
	if err != nil {
		t.Fatalf("OpenThread failed: %v", err)
	}
	if thread.Views != 1 || len(replies) != 0 {
		t.Errorf("expected 1 view and no replies, got %d views, %d replies", thread.Views, len(replies))
	}

	thread, _, _ = OpenThread(created.Tid)
	if thread.Views != 2 {
		t.Errorf("expected 2 views after second open, got %d", thread.Views)
	}

	stored, _ := FindThread(created.Tid)
	if stored.Views != 2 {
		t.Errorf("expected stored views 2, got %d", stored.Views)
	}
}

func TestOpenThreadCountsViewLocallyWhenUpdateFails(t *testing.T) {
	setupTestDB(t)
	created, _ := CreateThread(validThread())

	db.DB.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		tx.AddError(errors.New("update unavailable"))
	})

	thread, _, err := OpenThread(created.Tid)
	if err != nil {
		t.Fatalf("a failed view update must not block opening: %v", err)
	}
	if thread.Views != 1 {
		t.Errorf("expected local view count 1, got %d", thread.Views)
	}

	stored, _ := FindThread(created.Tid)
	if stored.Views != 0 {
		t.Errorf("expected stored views unchanged, got %d", stored.Views)
	}
}

func TestOpenThreadNotFound(t *testing.T) {
	setupTestDB(t)
	if _, _, err := OpenThread("missing"); !errors.Is(err, ErrThreadNotFound) {
		t.Errorf("expected ErrThreadNotFound, got %v", err)
	}
}

func TestAddReplyAppendsAndCounts(t *testing.T) {
	setupTestDB(t)
	thread, _ := CreateThread(validThread())
	before := thread.LastActivity

	authors := []string{"Ivar", "Freydis", "Leif"}
	for _, a := range authors {
		if _, err := AddReply(thread, ReplyInput{Author: a, Content: "Brace harder, " + a}); err != nil {
			t.Fatalf("AddReply failed: %v", err)
		}
	}

	if thread.ReplyCount != 3 {
		t.Errorf("expected local reply count 3, got %d", thread.ReplyCount)
	}
	if thread.LastActivity.Before(before) {
		t.Error("expected last activity to move forward")
	}

	stored, _ := FindThread(thread.Tid)
	if stored.ReplyCount != 3 {
		t.Errorf("expected stored reply count 3, got %d", stored.ReplyCount)
	}

	replies, _ := ListReplies(thread.ID)
	if len(replies) != 3 {
		t.Fatalf("expected 3 replies, got %d", len(replies))
	}
	for i, a := range authors {
		if replies[i].Author != a {
			t.Errorf("reply %d: expected %s, got %s", i, a, replies[i].Author)
		}
	}
}

func TestAddReplyRollsBackOnCounterFailure(t *testing.T) {
	setupTestDB(t)
	thread, _ := CreateThread(validThread())

	db.DB.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		tx.AddError(errors.New("counter update failed"))
	})

	if _, err := AddReply(thread, ReplyInput{Author: "Ivar", Content: "Hold the line"}); err == nil {
		t.Fatal("expected AddReply to fail")
	}
	if thread.ReplyCount != 0 {
		t.Errorf("local count must not change on failure, got %d", thread.ReplyCount)
	}

	var count int64
	db.DB.Model(&models.Reply{}).Count(&count)
	if count != 0 {
		t.Errorf("expected reply insert rolled back, found %d rows", count)
	}
}

func TestAddReplyValidation(t *testing.T) {
	setupTestDB(t)
	thread, _ := CreateThread(validThread())

	_, err := AddReply(thread, ReplyInput{Author: "", Content: " "})
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["author"] == "" || fe["content"] == "" {
		t.Errorf("expected author and content errors, got %v", err)
	}

	_, err = AddReply(thread, ReplyInput{Author: "Ivar", Content: strings.Repeat("x", ReplyMaxLen+1)})
	if !errors.As(err, &fe) || fe["content"] == "" {
		t.Errorf("expected content length error, got %v", err)
	}
}
