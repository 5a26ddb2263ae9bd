package study

import (
	"errors"
	"fmt"
)

var (
	// ErrSummarizationFailed marks any model-call failure during the map or
	// reduce phase. The whole attempt is discarded; the caller retries the
	// entire operation.
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrNoSummaryAvailable is returned when flashcards or Q&A are requested
	// before a final summary exists.
	ErrNoSummaryAvailable = errors.New("no summary available, summarize the document first")

	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotEntitled is returned when the subscription gate rejects a user
	// before the pipeline is allowed to run.
	ErrNotEntitled = errors.New("active subscription required")
)

// Phase identifies which half of the map-reduce pipeline failed.
type Phase string

const (
	PhaseMap    Phase = "map"
	PhaseReduce Phase = "reduce"
)

// SummarizationError wraps the cause of a failed summarization attempt with
// the phase it failed in. It matches ErrSummarizationFailed under errors.Is.
type SummarizationError struct {
	Phase Phase
	Err   error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed during %s phase: %v", e.Phase, e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

func (e *SummarizationError) Is(target error) bool {
	return target == ErrSummarizationFailed
}
