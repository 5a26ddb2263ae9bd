package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docsum/src/core/study"
	"docsum/src/log"
)

// Summarize runs the full map-reduce pipeline over the session's chunks.
// The operation is all-or-nothing: on any failure no summary is kept and
// the client retries the whole action.
func (h *Handler) Summarize(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	summary, err := h.engine.Summarize(c.Request.Context(), session)
	if err != nil {
		sendError(c, err)
		return
	}

	// Mirror the artifact to object storage so it survives the session.
	// The session copy backs the download endpoint either way.
	objectName := fmt.Sprintf("%s/final_summary.txt", session.ID)
	if err := h.minioService.PutObject(c.Request.Context(), h.summaryBucket, objectName, "text/plain", []byte(summary)); err != nil {
		log.Error(err, "failed to archive summary", "session", session.ID)
	}

	sendJSON(c, http.StatusOK, gin.H{
		"session_id": session.ID,
		"summary":    summary,
	})
}

// DownloadSummary serves the final summary as a plain-text file attachment.
func (h *Handler) DownloadSummary(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	summary, ok := session.FinalSummary()
	if !ok {
		sendError(c, study.ErrNoSummaryAvailable)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="final_summary.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(summary))
}
