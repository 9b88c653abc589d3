package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"valhalla/internal/services"

	"github.com/gin-gonic/gin"
)

// VerifyHandler is the passkey verification endpoint the gate can call
// remotely.
type VerifyHandler struct {
	secret services.PasskeySecret
}

func NewVerifyHandler(secret services.PasskeySecret) *VerifyHandler {
	return &VerifyHandler{secret: secret}
}

type verifyPayload struct {
	Passkey *string `json:"passkey"`
}

func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// Preflight answers CORS preflight requests.
func (h *VerifyHandler) Preflight(c *gin.Context) {
	corsHeaders(c)
	c.String(http.StatusOK, "ok")
}

func (h *VerifyHandler) Verify(c *gin.Context) {
	corsHeaders(c)

	var payload verifyPayload
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		log.Printf("Verify passkey: %v", err)
		c.JSON(http.StatusBadRequest, services.VerifyResponse{Error: "Invalid request format"})
		return
	}

	if !h.secret.Configured() {
		log.Println("SECRET_PASSKEY environment variable not set")
		c.JSON(http.StatusInternalServerError, services.VerifyResponse{Error: "Server configuration error"})
		return
	}

	valid := payload.Passkey != nil && h.secret.Matches(*payload.Passkey)
	message := "Access denied"
	if valid {
		message = "Access granted"
	}
	c.JSON(http.StatusOK, services.VerifyResponse{Success: valid, Message: message})
}
