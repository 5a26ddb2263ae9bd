/*
Copyright © 2025 docsum authors
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpHdlr "docsum/handler/http"
	"docsum/src/chunk"
	"docsum/src/core/study"
	"docsum/src/document"
	"docsum/src/llm"
	"docsum/src/log"
	"docsum/src/storage/minioctrl"
	"docsum/src/storage/postgres/uploadlogctrl"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarization server",
	Long:  `The serve command starts an HTTP server that provides document upload, summarization, flashcard and Q&A endpoints.`,
	Run:   RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// Chunker parameters are a startup-time configuration contract, not a
	// per-request one.
	splitter, err := chunk.NewSplitter(viper.GetInt("chunker.size"), viper.GetInt("chunker.overlap"))
	if err != nil {
		log.Error(err, "Invalid chunker configuration")
		return
	}

	// Initialize PostgreSQL connection for the upload log
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		viper.GetString("postgres.host"),
		viper.GetString("postgres.user"),
		viper.GetString("postgres.password"),
		viper.GetString("postgres.db"),
		viper.GetString("postgres.port"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	uploadLog, err := uploadlogctrl.NewUploadLogService(db)
	if err != nil {
		log.Error(err, "Failed to create upload log service")
		return
	}

	// Initialize MinIO-backed storage for scratch uploads and summaries
	minioService, err := minioctrl.NewMinioService(
		viper.GetString("minio.endpoint"),
		viper.GetString("minio.access_key"),
		viper.GetString("minio.secret_key"),
		false,
	)
	if err != nil {
		log.Error(err, "Failed to create minio service")
		return
	}

	scratch, err := minioctrl.NewScratchBucket(ctx, minioService, viper.GetString("minio.upload_bucket"))
	if err != nil {
		log.Error(err, "Failed to prepare upload bucket")
		return
	}

	// Initialize the language model client
	llmClient, err := llm.NewClient(llm.Config{
		Provider:   viper.GetString("llm.provider"),
		Model:      viper.GetString("llm.model"),
		BaseURL:    viper.GetString("llm.base_url"),
		APIKey:     viper.GetString("llm.api_key"),
		Timeout:    viper.GetDuration("llm.timeout"),
		MaxRetries: uint64(viper.GetInt("llm.max_retries")),
	})
	if err != nil {
		log.Error(err, "Failed to create llm client")
		return
	}

	engine := study.NewEngine(llmClient)
	sessions := study.NewInMemorySessionStore()
	entitlement := study.NewStaticEntitlement(
		viper.GetBool("entitlement.enforce"),
		viper.GetStringSlice("entitlement.subscribers"),
	)

	handler, err := httpHdlr.NewHandler(
		document.NewLoader(scratch),
		splitter,
		engine,
		sessions,
		entitlement,
		uploadLog,
		minioService,
		viper.GetString("minio.summary_bucket"),
	)
	if err != nil {
		log.Error(err, "Failed to initialize handler")
		return
	}

	// Setup gin router
	r := gin.Default()

	// Register routes
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + viper.GetString("server.port"),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			return
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	log.Info("Server exited")
}
