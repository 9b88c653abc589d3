package handlers

import (
	"errors"
	"log"
	"net/http"
	"valhalla/internal/services"

	"github.com/gin-gonic/gin"
)

type WallHandler struct{}

func NewWallHandler() *WallHandler {
	return &WallHandler{}
}

// Create posts to the community wall and sends the visitor back to the
// refreshed list.
func (h *WallHandler) Create(c *gin.Context) {
	input := services.WallPostInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Tag:     c.PostForm("tag"),
		Message: c.PostForm("message"),
	}

	if _, err := services.CreateWallPost(input); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			renderHome(c, http.StatusBadRequest, gin.H{
				"Alert":      verr.Message,
				"Form":       input,
				"FieldError": verr.Field,
			})
			return
		}

		log.Printf("Failed to create wall post: %v", err)
		renderHome(c, http.StatusInternalServerError, gin.H{
			"Alert": alertText("Error submitting your post", err),
			"Form":  input,
		})
		return
	}

	flash(c, flashSuccess, "Your post has been submitted successfully!")
	redirect(c, "/#forum")
}
