package cmd

import "github.com/spf13/viper"

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for PostgreSQL
	viper.BindEnv("postgres.host", "POSTGRES_HOST")
	viper.BindEnv("postgres.port", "POSTGRES_PORT")
	viper.BindEnv("postgres.user", "POSTGRES_USER")
	viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	viper.BindEnv("postgres.db", "POSTGRES_DB")

	// Map environment variables to Viper keys for MinIO and Server
	viper.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("minio.upload_bucket", "MINIO_UPLOAD_BUCKET")
	viper.BindEnv("minio.summary_bucket", "MINIO_SUMMARY_BUCKET")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	// Map environment variables to Viper keys for the language model
	viper.BindEnv("llm.provider", "LLM_PROVIDER")
	viper.BindEnv("llm.model", "LLM_MODEL")
	viper.BindEnv("llm.base_url", "LLM_BASE_URL")
	viper.BindEnv("llm.api_key", "LLM_API_KEY")
	viper.BindEnv("llm.timeout", "LLM_TIMEOUT")
	viper.BindEnv("llm.max_retries", "LLM_MAX_RETRIES")

	// Map environment variables to Viper keys for chunking and entitlement
	viper.BindEnv("chunker.size", "CHUNKER_SIZE")
	viper.BindEnv("chunker.overlap", "CHUNKER_OVERLAP")
	viper.BindEnv("entitlement.enforce", "ENTITLEMENT_ENFORCE")
	viper.BindEnv("entitlement.subscribers", "ENTITLEMENT_SUBSCRIBERS")

	// Set default values for PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.db", "docsum")

	// Set default values for MinIO and Server
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.upload_bucket", "uploads")
	viper.SetDefault("minio.summary_bucket", "summaries")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")

	// Set default values for the language model
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.base_url", "")
	viper.SetDefault("llm.timeout", "60s")
	viper.SetDefault("llm.max_retries", 3)

	// Set default values for chunking and entitlement
	viper.SetDefault("chunker.size", 1000)
	viper.SetDefault("chunker.overlap", 100)
	viper.SetDefault("entitlement.enforce", false)
	viper.SetDefault("entitlement.subscribers", []string{})
}
