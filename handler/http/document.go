package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docsum/src/core/study"
	"docsum/src/log"
)

// UploadDocument accepts a multipart upload, parses it into a document,
// chunks it and opens a new study session holding the chunks.
func (h *Handler) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: "No file uploaded"})
		return
	}
	defer file.Close()

	// The declared media type drives loader selection. An explicit form
	// value wins over the multipart part header.
	mediaType := c.PostForm("media_type")
	if mediaType == "" {
		mediaType = header.Header.Get("Content-Type")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Message: "Failed to read file"})
		return
	}

	doc, err := h.loader.Load(c.Request.Context(), header.Filename, mediaType, data)
	if err != nil {
		sendError(c, err)
		return
	}

	chunks := h.splitter.Split(doc)
	userID := c.GetString(userIDKey)

	session := study.NewSession(userID, doc.SourceName, chunks)
	h.sessions.Put(session)

	// The upload log is informational; a write failure must not fail the
	// upload itself.
	if _, err := h.uploadLog.Record(c.Request.Context(), userID, header.Filename, mediaType, int64(len(data))); err != nil {
		log.Error(err, "failed to record upload", "user", userID, "filename", header.Filename)
	}

	sendJSON(c, http.StatusCreated, gin.H{
		"session_id": session.ID,
		"filename":   doc.SourceName,
		"chunks":     len(chunks),
	})
}

// ListUploads returns the calling user's upload history.
func (h *Handler) ListUploads(c *gin.Context) {
	limit := 20
	offset := 0

	if limitParam := c.Query("limit"); limitParam != "" {
		if _, err := fmt.Sscanf(limitParam, "%d", &limit); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid limit parameter"})
			return
		}
	}
	if offsetParam := c.Query("offset"); offsetParam != "" {
		if _, err := fmt.Sscanf(offsetParam, "%d", &offset); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Code: "BAD_REQUEST", Message: "Invalid offset parameter"})
			return
		}
	}

	records, err := h.uploadLog.ListByUser(c.Request.Context(), c.GetString(userIDKey), limit, offset)
	if err != nil {
		sendError(c, err)
		return
	}

	sendJSON(c, http.StatusOK, gin.H{
		"uploads": records,
		"pagination": gin.H{
			"limit":  limit,
			"offset": offset,
		},
	})
}

// DeleteSession discards a session and everything it owns.
func (h *Handler) DeleteSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		sendError(c, err)
		return
	}

	h.sessions.Delete(session.ID)
	c.Status(http.StatusNoContent)
}
