package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys for the entry gate.
const (
	GatePassedKey   = "gate_passed"
	GateAttemptsKey = "gate_attempts"
)

// GatePassed reports whether this visitor has opened the gate.
func GatePassed(c *gin.Context) bool {
	passed, _ := sessions.Default(c).Get(GatePassedKey).(bool)
	return passed
}

// GateRequired sends visitors who have not passed the gate back to it.
func GateRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GatePassed(c) {
			c.Next()
			return
		}

		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Redirect", "/gate")
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Redirect(http.StatusFound, "/gate")
		c.Abort()
	}
}
