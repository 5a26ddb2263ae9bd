package study

import (
	"context"
	"fmt"
)

// Answer responds to an ad hoc question grounded in the session's final
// summary and appends the exchange to the conversation log, question first.
// Each call is independent: the model sees the final summary and the
// current question only, never prior turns. Without a final summary it
// fails with ErrNoSummaryAvailable and performs no model call.
func (e *Engine) Answer(ctx context.Context, session *Session, question string) (string, error) {
	summary, ok := session.FinalSummary()
	if !ok {
		return "", ErrNoSummaryAvailable
	}

	prompt, err := QARequest{SummaryText: summary, Question: question}.Prompt()
	if err != nil {
		return "", fmt.Errorf("failed to build question prompt: %w", err)
	}

	answer, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	session.AppendTurn(RoleUser, question)
	session.AppendTurn(RoleAssistant, answer)
	return answer, nil
}
