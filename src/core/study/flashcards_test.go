package study_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docsum/src/core/study"
)

func TestParseFlashcards(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []study.Flashcard
	}{
		{
			name: "even number of lines",
			text: "Q1\nA1\nQ2\nA2",
			want: []study.Flashcard{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}},
		},
		{
			name: "trailing unpaired line is dropped",
			text: "Q1\nA1\nQ2\nA2\nQ3",
			want: []study.Flashcard{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}},
		},
		{
			name: "blank lines are skipped",
			text: "Q1\n\nA1\n\n\nQ2\nA2\n",
			want: []study.Flashcard{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}},
		},
		{
			name: "surrounding whitespace is trimmed",
			text: "  Q1  \n\tA1\t",
			want: []study.Flashcard{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "single line yields nothing",
			text: "Q1",
			want: nil,
		},
		{
			name: "empty output yields nothing",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := study.ParseFlashcards(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d flashcards, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("flashcard %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateFlashcardsRequiresSummary(t *testing.T) {
	provider := &fakeProvider{
		respond: func(call int, prompt string) (string, error) { return "Q\nA", nil },
	}
	engine := study.NewEngine(provider)
	session := study.NewSession("u1", "doc.txt", makeChunks("alpha"))

	_, err := engine.GenerateFlashcards(context.Background(), session, 5)
	if !errors.Is(err, study.ErrNoSummaryAvailable) {
		t.Fatalf("error = %v, want ErrNoSummaryAvailable", err)
	}
	if provider.calls() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.calls())
	}
}

func TestGenerateFlashcardsFromSummary(t *testing.T) {
	provider := &fakeProvider{
		respond: func(call int, prompt string) (string, error) {
			return "What is Go?\nA programming language.\nWho made it?\nGoogle.", nil
		},
	}
	engine := study.NewEngine(provider)
	session := study.NewSession("u1", "doc.txt", makeChunks("alpha"))
	session.SetFinalSummary("Go is a programming language made at Google.")

	cards, err := engine.GenerateFlashcards(context.Background(), session, 2)
	if err != nil {
		t.Fatalf("GenerateFlashcards: %v", err)
	}

	if len(cards) != 2 {
		t.Fatalf("got %d flashcards, want 2", len(cards))
	}
	if cards[0].Question != "What is Go?" || cards[0].Answer != "A programming language." {
		t.Errorf("unexpected first card: %+v", cards[0])
	}

	if provider.calls() != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls())
	}
	prompt := provider.prompts[0]
	if !strings.Contains(prompt, "Go is a programming language made at Google.") {
		t.Errorf("prompt does not carry the summary:\n%s", prompt)
	}
	if !strings.Contains(prompt, "2 question and answer flashcards") {
		t.Errorf("prompt does not carry the requested count:\n%s", prompt)
	}
}

func TestGenerateFlashcardsDefaultsCount(t *testing.T) {
	provider := &fakeProvider{
		respond: func(call int, prompt string) (string, error) { return "Q\nA", nil },
	}
	engine := study.NewEngine(provider)
	session := study.NewSession("u1", "doc.txt", makeChunks("alpha"))
	session.SetFinalSummary("summary text")

	if _, err := engine.GenerateFlashcards(context.Background(), session, 0); err != nil {
		t.Fatalf("GenerateFlashcards: %v", err)
	}
	if !strings.Contains(provider.prompts[0], "10 question and answer flashcards") {
		t.Errorf("prompt does not use the default count:\n%s", provider.prompts[0])
	}
}
