package handlers

import (
	"net/http"
	"valhalla/internal/content"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashAlert   = "alert"
	flashSuccess = "success"
)

// Render helper to inject common variables like navigation and flashes
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if _, ok := obj["ShowNav"]; !ok {
		obj["ShowNav"] = true
	}
	obj["Navigation"] = content.Navigation
	obj["CurrentPath"] = c.Request.URL.Path

	session := sessions.Default(c)
	alerts := session.Flashes(flashAlert)
	successes := session.Flashes(flashSuccess)
	if len(alerts) > 0 || len(successes) > 0 {
		session.Save()
	}
	if _, ok := obj["Alert"]; !ok && len(alerts) > 0 {
		obj["Alert"] = alerts[0]
	}
	if _, ok := obj["Success"]; !ok && len(successes) > 0 {
		obj["Success"] = successes[0]
	}

	c.HTML(code, name, obj)
}

// HTMX Redirect helper
func HtmxRedirect(c *gin.Context, path string) {
	c.Header("HX-Redirect", path)
	c.Status(http.StatusOK) // HTMX handles the redirect on client side via header
}

func isHtmx(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// redirect sends plain requests a 302 and HTMX requests an HX-Redirect.
func redirect(c *gin.Context, path string) {
	if isHtmx(c) {
		HtmxRedirect(c, path)
		return
	}
	c.Redirect(http.StatusFound, path)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": http.StatusText(code)})
}

func flash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	session.Save()
}

// alertText joins a user-facing prefix with the underlying error.
func alertText(prefix string, err error) string {
	if err == nil {
		return prefix
	}
	return prefix + ": " + err.Error()
}

func NotFound(c *gin.Context) {
	RenderError(c, http.StatusNotFound, "Page not found")
}
