package handlers

import (
	"log"
	"net/http"
	"strings"
	"valhalla/internal/content"
	"valhalla/internal/middleware"
	"valhalla/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	verifier services.PasskeyVerifier
}

func NewGateHandler(verifier services.PasskeyVerifier) *GateHandler {
	return &GateHandler{verifier: verifier}
}

// Show renders the entry screen. Loading the page starts a fresh visit:
// the failed-attempt counter resets and the hint is hidden again.
func (h *GateHandler) Show(c *gin.Context) {
	if middleware.GatePassed(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	session := sessions.Default(c)
	session.Delete(middleware.GateAttemptsKey)
	session.Save()

	h.render(c, http.StatusOK, services.GateState{})
}

// Submit checks a passkey. Denials and verifier failures look the same to
// the visitor.
func (h *GateHandler) Submit(c *gin.Context) {
	if middleware.GatePassed(c) {
		redirect(c, "/")
		return
	}

	session := sessions.Default(c)
	attempts, _ := session.Get(middleware.GateAttemptsKey).(int)
	state := services.GateState{Attempts: attempts}

	passkey := strings.TrimSpace(c.PostForm("passkey"))
	if passkey == "" {
		h.render(c, http.StatusOK, state)
		return
	}

	ok, err := h.verifier.Verify(c.Request.Context(), passkey)
	if err != nil {
		log.Printf("Gate verification error: %v", err)
	}
	if err == nil && ok {
		session.Delete(middleware.GateAttemptsKey)
		session.Set(middleware.GatePassedKey, true)
		session.Save()
		redirect(c, "/")
		return
	}

	state.Fail()
	session.Set(middleware.GateAttemptsKey, state.Attempts)
	session.Save()

	h.render(c, http.StatusUnauthorized, state)
}

func (h *GateHandler) render(c *gin.Context, code int, state services.GateState) {
	Render(c, code, "gate.html", gin.H{
		"Title":    "Projekt Valhalla",
		"ShowNav":  false,
		"Shake":    state.Shake,
		"Attempts": state.Attempts,
		"ShowHint": state.ShowHint(),
		"Hint":     content.GateHint,
	})
}
