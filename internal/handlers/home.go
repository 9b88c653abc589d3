package handlers

import (
	"log"
	"net/http"
	"valhalla/internal/content"
	"valhalla/internal/models"
	"valhalla/internal/services"
	"valhalla/internal/utils"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index renders the content shell: hero, program grid, wall, about.
func (h *HomeHandler) Index(c *gin.Context) {
	renderHome(c, http.StatusOK, nil)
}

// renderHome re-fetches the program grid and wall posts on every call;
// extra carries form state and alerts from the wall handler.
func renderHome(c *gin.Context, code int, extra gin.H) {
	data := gin.H{
		"Title":      "Projekt Valhalla",
		"Hero":       content.Hero,
		"About":      content.About,
		"Gallery":    content.Gallery(utils.StringToInt(c.Query("img"))),
		"Tags":       models.WallTags,
		"Form":       services.WallPostInput{},
		"FieldError": "",
	}

	programs, err := services.ListPrograms()
	if err != nil {
		log.Printf("Failed to load programs: %v", err)
	}
	data["Programs"] = programs

	posts, err := services.ListWallPosts()
	if err != nil {
		log.Printf("Failed to load wall posts: %v", err)
		data["Alert"] = alertText("Error loading posts", err)
	}
	data["Posts"] = posts

	for k, v := range extra {
		data[k] = v
	}
	Render(c, code, "home.html", data)
}
