package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docsum/src/chunk"
	"docsum/src/core/study"
	"docsum/src/document"
	"docsum/src/storage/minioctrl"
	"docsum/src/storage/postgres/uploadlogctrl"
)

const userIDKey = "userID"

// Handler exposes the summarization pipeline over HTTP.
type Handler struct {
	loader        *document.Loader
	splitter      *chunk.Splitter
	engine        *study.Engine
	sessions      study.SessionStore
	entitlement   study.EntitlementChecker
	uploadLog     *uploadlogctrl.UploadLogService
	minioService  *minioctrl.MinioService
	summaryBucket string
}

func NewHandler(
	loader *document.Loader,
	splitter *chunk.Splitter,
	engine *study.Engine,
	sessions study.SessionStore,
	entitlement study.EntitlementChecker,
	uploadLog *uploadlogctrl.UploadLogService,
	minioService *minioctrl.MinioService,
	summaryBucket string,
) (*Handler, error) {
	if err := minioService.EnsureBucketExists(context.Background(), summaryBucket); err != nil {
		return nil, fmt.Errorf("failed to ensure summary bucket exists: %v", err)
	}

	return &Handler{
		loader:        loader,
		splitter:      splitter,
		engine:        engine,
		sessions:      sessions,
		entitlement:   entitlement,
		uploadLog:     uploadLog,
		minioService:  minioService,
		summaryBucket: summaryBucket,
	}, nil
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	api.Use(h.resolveUser)

	api.GET("/health", h.CheckHealth)
	api.GET("/uploads", h.ListUploads)

	gated := api.Group("")
	gated.Use(h.requireEntitlement)

	// Document routes
	gated.POST("/documents", h.UploadDocument)

	// Session routes
	gated.POST("/sessions/:id/summary", h.Summarize)
	gated.GET("/sessions/:id/summary/download", h.DownloadSummary)
	gated.POST("/sessions/:id/flashcards", h.GenerateFlashcards)
	gated.POST("/sessions/:id/chat", h.Ask)
	gated.GET("/sessions/:id/chat/history", h.GetChatHistory)
	gated.DELETE("/sessions/:id", h.DeleteSession)
}

// resolveUser attaches the opaque authenticated-user identifier to the
// request context. How the identifier is established is outside this
// service; an upstream proxy sets the header.
func (h *Handler) resolveUser(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}
	c.Set(userIDKey, userID)
	c.Next()
}

// requireEntitlement rejects users without an active subscription before
// the pipeline is allowed to run.
func (h *Handler) requireEntitlement(c *gin.Context) {
	userID := c.GetString(userIDKey)
	if !h.entitlement.Allowed(c.Request.Context(), userID) {
		c.AbortWithStatusJSON(http.StatusPaymentRequired, ErrorResponse{
			Code:    "SUBSCRIPTION_REQUIRED",
			Message: study.ErrNotEntitled.Error(),
		})
		return
	}
	c.Next()
}

// Common error response structure
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func sendError(c *gin.Context, err error) {
	var code string
	var status int

	switch {
	case errors.Is(err, document.ErrUnsupportedFileType):
		code = "UNSUPPORTED_FILE_TYPE"
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, document.ErrDocumentLoad):
		code = "DOCUMENT_LOAD_ERROR"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, study.ErrSessionNotFound):
		code = "SESSION_NOT_FOUND"
		status = http.StatusNotFound
	case errors.Is(err, study.ErrNoSummaryAvailable):
		code = "NO_SUMMARY_AVAILABLE"
		status = http.StatusConflict
	case errors.Is(err, study.ErrSummarizationFailed):
		code = "SUMMARIZATION_FAILED"
		status = http.StatusBadGateway
	default:
		code = "INTERNAL_ERROR"
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func sendJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
