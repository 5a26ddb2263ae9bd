package study

import (
	"context"
	"errors"
	"fmt"

	"docsum/src/log"
)

// LLMProvider is the single external capability the engine depends on:
// submit a text prompt, receive generated text.
type LLMProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine drives the two-phase map-reduce summarization pipeline and the
// downstream flashcard and Q&A features built on its output.
type Engine struct {
	provider LLMProvider
	progress func(done, total int)
}

type EngineOption func(*Engine)

// WithProgress registers a callback invoked after each completed map-phase
// call with the number of chunks summarized so far.
func WithProgress(fn func(done, total int)) EngineOption {
	return func(e *Engine) {
		e.progress = fn
	}
}

func NewEngine(provider LLMProvider, opts ...EngineOption) *Engine {
	e := &Engine{provider: provider}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize runs the map phase over the session's chunks in chunk order,
// one independent model call per chunk, then issues a single reduce call
// over the concatenated chunk summaries. Any failure in either phase
// discards the whole attempt: no partial summary is ever kept, and the
// session's final summary is only set on full success.
func (e *Engine) Summarize(ctx context.Context, session *Session) (string, error) {
	chunks := session.Chunks
	if len(chunks) == 0 {
		return "", &SummarizationError{Phase: PhaseMap, Err: errors.New("document produced no chunks")}
	}

	// Map phase. Calls are independent: no cross-chunk context is shared,
	// which keeps each call inside the model's context window no matter how
	// long the document is.
	summaries := make([]string, 0, len(chunks))
	for i, c := range chunks {
		prompt, err := MapSummarizeRequest{ChunkText: c.Text}.Prompt()
		if err != nil {
			return "", &SummarizationError{Phase: PhaseMap, Err: err}
		}

		summary, err := e.provider.Generate(ctx, prompt)
		if err != nil {
			return "", &SummarizationError{Phase: PhaseMap, Err: fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)}
		}
		summaries = append(summaries, summary)

		log.Debug("chunk summarized", "session", session.ID, "chunk", i+1, "total", len(chunks))
		if e.progress != nil {
			e.progress(i+1, len(chunks))
		}
	}

	// Reduce phase: one call over the chunk summaries joined in original
	// chunk order. The ordering is load-bearing for coherence.
	prompt, err := ReduceSummarizeRequest{Summaries: summaries}.Prompt()
	if err != nil {
		return "", &SummarizationError{Phase: PhaseReduce, Err: err}
	}

	finalSummary, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		return "", &SummarizationError{Phase: PhaseReduce, Err: err}
	}

	session.SetFinalSummary(finalSummary)
	log.Info("summary produced", "session", session.ID, "chunks", len(chunks), "summary_length", len(finalSummary))
	return finalSummary, nil
}
