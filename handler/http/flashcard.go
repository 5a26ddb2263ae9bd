package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type generateFlashcardsRequest struct {
	Count int `json:"count"`
}

// GenerateFlashcards derives question/answer pairs from the session's
// final summary.
func (h *Handler) GenerateFlashcards(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	var req generateFlashcardsRequest
	// An empty body means the default count.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
			return
		}
	}

	cards, err := h.engine.GenerateFlashcards(c.Request.Context(), session, req.Count)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, gin.H{
		"session_id": session.ID,
		"flashcards": cards,
	})
}
