package study

import (
	"context"
	"fmt"
	"strings"
)

const DefaultFlashcardCount = 10

// Flashcard is one question/answer pair derived from a final summary.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateFlashcards derives question/answer pairs from the session's final
// summary with a single model call. It fails with ErrNoSummaryAvailable if
// the document has not been summarized yet.
func (e *Engine) GenerateFlashcards(ctx context.Context, session *Session, count int) ([]Flashcard, error) {
	summary, ok := session.FinalSummary()
	if !ok {
		return nil, ErrNoSummaryAvailable
	}
	if count <= 0 {
		count = DefaultFlashcardCount
	}

	prompt, err := FlashcardRequest{SummaryText: summary, Count: count}.Prompt()
	if err != nil {
		return nil, fmt.Errorf("failed to build flashcard prompt: %w", err)
	}

	out, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("flashcard generation failed: %w", err)
	}

	return ParseFlashcards(out), nil
}

// ParseFlashcards pairs consecutive non-empty lines of model output as
// question then answer. A trailing unpaired line is dropped rather than
// treated as an error. The pairing is positional: the lines themselves are
// not validated, so malformed model output yields odd but harmless cards.
func ParseFlashcards(text string) []Flashcard {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	cards := make([]Flashcard, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		cards = append(cards, Flashcard{
			Question: lines[i],
			Answer:   lines[i+1],
		})
	}
	return cards
}
