package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"docsum/src/log"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config selects and tunes the model backend.
type Config struct {
	Provider   string
	Model      string
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries uint64
}

// Client submits a text prompt to an externally hosted language model and
// returns the generated text. Transient provider failures are retried with
// exponential backoff before the error is surfaced.
type Client struct {
	model      llms.Model
	timeout    time.Duration
	maxRetries uint64
}

func NewClient(cfg Config) (*Client, error) {
	var model llms.Model
	var err error

	switch cfg.Provider {
	case ProviderOpenAI:
		opts := []openai.Option{
			openai.WithModel(cfg.Model),
			openai.WithToken(cfg.APIKey),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		model, err = openai.New(opts...)
	case ProviderOllama:
		model, err = ollama.New(
			ollama.WithServerURL(cfg.BaseURL),
			ollama.WithModel(cfg.Model),
		)
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	return &Client{
		model:      model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
	}, nil
}

// Generate performs one blocking prompt/response round trip. Each attempt
// gets its own timeout so a stuck call cannot block the pipeline forever.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	var result string
	operation := func() error {
		callCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		out, err := llms.GenerateFromSinglePrompt(callCtx, c.model, prompt)
		if err != nil {
			log.Debug("llm call failed, may retry", "error", err.Error())
			return err
		}
		result = out
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("llm generate: %w", err)
	}
	return result, nil
}
