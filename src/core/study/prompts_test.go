package study_test

import (
	"strings"
	"testing"

	"docsum/src/core/study"
)

func TestMapSummarizePrompt(t *testing.T) {
	req := study.MapSummarizeRequest{ChunkText: "chunk body here"}

	first, err := req.Prompt()
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	second, err := req.Prompt()
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}

	if first != second {
		t.Errorf("prompt is not deterministic")
	}
	if !strings.Contains(first, "chunk body here") {
		t.Errorf("prompt does not carry the chunk text:\n%s", first)
	}
	if !strings.HasPrefix(first, "You are a highly skilled AI model") {
		t.Errorf("unexpected prompt preamble:\n%s", first)
	}
}

func TestReduceSummarizePromptJoinsInOrder(t *testing.T) {
	req := study.ReduceSummarizeRequest{Summaries: []string{"one", "two", "three"}}

	prompt, err := req.Prompt()
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if !strings.Contains(prompt, "one\ntwo\nthree") {
		t.Errorf("summaries are not newline-joined in order:\n%s", prompt)
	}
}

func TestFlashcardPrompt(t *testing.T) {
	req := study.FlashcardRequest{SummaryText: "the summary", Count: 7}

	prompt, err := req.Prompt()
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if !strings.Contains(prompt, "7 question and answer flashcards") {
		t.Errorf("prompt does not carry the count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "the summary") {
		t.Errorf("prompt does not carry the summary:\n%s", prompt)
	}
}

func TestQAPrompt(t *testing.T) {
	req := study.QARequest{SummaryText: "the summary", Question: "what now?"}

	prompt, err := req.Prompt()
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if !strings.Contains(prompt, "the summary") {
		t.Errorf("prompt does not carry the summary:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Question: what now?") {
		t.Errorf("prompt does not carry the question:\n%s", prompt)
	}
}
