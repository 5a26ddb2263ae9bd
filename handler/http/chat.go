package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask answers a question grounded in the session's final summary and
// appends the exchange to the conversation log.
func (h *Handler) Ask(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
		return
	}

	answer, err := h.engine.Answer(c.Request.Context(), session, req.Question)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, gin.H{
		"session_id": session.ID,
		"answer":     answer,
	})
}

// GetChatHistory returns the session's conversation log in append order.
func (h *Handler) GetChatHistory(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, gin.H{
		"session_id": session.ID,
		"turns":      session.History(),
	})
}
