package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"valhalla/internal/models"
	"valhalla/internal/services"

	"github.com/gin-gonic/gin"
)

type ForumHandler struct{}

func NewForumHandler() *ForumHandler {
	return &ForumHandler{}
}

// List shows threads by last activity, optionally filtered by category.
func (h *ForumHandler) List(c *gin.Context) {
	category := c.Query("category")
	if !models.IsThreadCategory(category) {
		category = ""
	}

	threads, err := services.ListThreads(category)
	if err != nil {
		log.Printf("Failed to load threads: %v", err)
		RenderError(c, http.StatusInternalServerError, alertText("Error loading threads", err))
		return
	}

	Render(c, http.StatusOK, "forum/list.html", gin.H{
		"Title":      "Forum",
		"Threads":    threads,
		"Categories": models.ThreadCategories,
		"Category":   category,
	})
}

func (h *ForumHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "forum/create.html", gin.H{
		"Title":      "New Thread",
		"Categories": models.ThreadCategories,
		"Form":       services.ThreadInput{Category: c.Query("category")},
	})
}

func (h *ForumHandler) Create(c *gin.Context) {
	input := services.ThreadInput{
		Title:    c.PostForm("title"),
		Author:   c.PostForm("author"),
		Content:  c.PostForm("content"),
		Category: c.PostForm("category"),
	}

	thread, err := services.CreateThread(input)
	if err != nil {
		data := gin.H{
			"Title":      "New Thread",
			"Categories": models.ThreadCategories,
			"Form":       input,
		}

		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			data["Errors"] = fieldErrs
			Render(c, http.StatusBadRequest, "forum/create.html", data)
			return
		}

		log.Printf("Failed to create thread: %v", err)
		data["Alert"] = alertText("Error creating thread", err)
		Render(c, http.StatusInternalServerError, "forum/create.html", data)
		return
	}

	// The redirect is the open that counts the author's first view.
	redirect(c, "/forum/t/"+thread.Tid)
}

// Detail opens a thread. Every open counts one view, except the page load
// that follows a reply of one's own.
func (h *ForumHandler) Detail(c *gin.Context) {
	tid := c.Param("tid")

	var (
		thread  *models.Thread
		replies []models.Reply
		err     error
	)
	if c.Query("posted") == "1" {
		thread, err = services.FindThread(tid)
		if err == nil {
			replies, err = services.ListReplies(thread.ID)
		}
	} else {
		thread, replies, err = services.OpenThread(tid)
	}

	if err != nil {
		if errors.Is(err, services.ErrThreadNotFound) {
			RenderError(c, http.StatusNotFound, "Thread not found")
			return
		}
		log.Printf("Failed to load thread %s: %v", tid, err)
		RenderError(c, http.StatusInternalServerError, alertText("Error loading thread", err))
		return
	}

	renderThread(c, http.StatusOK, thread, replies, gin.H{})
}

func (h *ForumHandler) CreateReply(c *gin.Context) {
	tid := c.Param("tid")

	thread, err := services.FindThread(tid)
	if err != nil {
		if errors.Is(err, services.ErrThreadNotFound) {
			RenderError(c, http.StatusNotFound, "Thread not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, alertText("Error loading thread", err))
		return
	}

	input := services.ReplyInput{
		Author:  c.PostForm("author"),
		Content: c.PostForm("content"),
	}

	reply, err := services.AddReply(thread, input)
	if err != nil {
		var fieldErrs services.FieldErrors
		code := http.StatusInternalServerError
		extra := gin.H{"ReplyForm": input}
		if errors.As(err, &fieldErrs) {
			code = http.StatusBadRequest
			extra["Errors"] = fieldErrs
		} else {
			log.Printf("Failed to post reply to %s: %v", tid, err)
			extra["Alert"] = alertText("Error posting your reply", err)
		}

		if isHtmx(c) {
			c.Header("HX-Retarget", "#reply-errors")
			c.Header("HX-Reswap", "innerHTML")
			c.HTML(code, "forum/reply_errors.html", extra)
			return
		}

		replies, listErr := services.ListReplies(thread.ID)
		if listErr != nil {
			RenderError(c, http.StatusInternalServerError, alertText("Error loading thread", listErr))
			return
		}
		renderThread(c, code, thread, replies, extra)
		return
	}

	if isHtmx(c) {
		c.HTML(http.StatusOK, "forum/reply.html", gin.H{
			"Reply":  reply,
			"Thread": thread,
		})
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/forum/t/%s?posted=1#reply-%d", thread.Tid, reply.ID))
}

func renderThread(c *gin.Context, code int, thread *models.Thread, replies []models.Reply, extra gin.H) {
	data := gin.H{
		"Title":     thread.Title,
		"Thread":    thread,
		"Replies":   replies,
		"ReplyForm": services.ReplyInput{},
	}
	for k, v := range extra {
		data[k] = v
	}
	Render(c, code, "forum/detail.html", data)
}
