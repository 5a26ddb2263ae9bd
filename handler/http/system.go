package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckHealth reports service liveness.
func (h *Handler) CheckHealth(c *gin.Context) {
	sendJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
