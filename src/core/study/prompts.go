package study

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Prompt templates. Each operation has a typed request struct mapped to a
// prompt string by a pure formatting function, so prompt construction stays
// testable independent of the model client.

const mapSummarizePromptTmpl = `You are a highly skilled AI model tasked with summarizing text. Please summarize the following chunk of text in a concise manner, highlighting the most critical information. Do not omit any key details:

{{.ChunkText}}`

const reduceSummarizePromptTmpl = `You are an expert summarizer tasked with creating a final summary from summarized chunks. Combine the key points from the provided summaries into a cohesive and comprehensive summary. The final summary should be concise but detailed enough to capture the main ideas:

{{.Combined}}`

const flashcardPromptTmpl = `You are a study assistant. Generate {{.Count}} question and answer flashcards from the summary below. Write each question on its own line, immediately followed by its answer on the next line. Do not number, label or leave blank lines between them.

{{.SummaryText}}`

const qaPromptTmpl = `Answer the question using only the information contained in the summary below.

Summary:
{{.SummaryText}}

Question: {{.Question}}`

// MapSummarizeRequest is the map-phase request for a single chunk.
type MapSummarizeRequest struct {
	ChunkText string
}

func (r MapSummarizeRequest) Prompt() (string, error) {
	return executeTemplate(mapSummarizePromptTmpl, r)
}

// ReduceSummarizeRequest combines all chunk summaries, in chunk order, into
// the reduce-phase request.
type ReduceSummarizeRequest struct {
	Summaries []string
}

func (r ReduceSummarizeRequest) Prompt() (string, error) {
	data := struct{ Combined string }{Combined: strings.Join(r.Summaries, "\n")}
	return executeTemplate(reduceSummarizePromptTmpl, data)
}

// FlashcardRequest asks for Count question/answer pairs from a summary.
type FlashcardRequest struct {
	SummaryText string
	Count       int
}

func (r FlashcardRequest) Prompt() (string, error) {
	return executeTemplate(flashcardPromptTmpl, r)
}

// QARequest grounds a single question in the final summary. Prior
// conversation turns are stored for display but not included here.
type QARequest struct {
	SummaryText string
	Question    string
}

func (r QARequest) Prompt() (string, error) {
	return executeTemplate(qaPromptTmpl, r)
}

func executeTemplate(tmpl string, data interface{}) (string, error) {
	var buf bytes.Buffer
	t := template.Must(template.New("prompt").Parse(tmpl))
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
