package usecase

import (
	"context"
	"strings"

	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
)

func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input support.AskInput) (support.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return support.AskOutput{}, support.ErrEmptyQuestion
	}

	conv, err := uc.conversation(sc)
	if err != nil {
		return support.AskOutput{}, err
	}

	answer := uc.Answer(ctx, question)
	conv.Append(
		model.ChatMessage{Role: model.ChatRoleUser, Content: question},
		answer.Message(),
	)

	return support.AskOutput{Answer: answer, Transcript: conv.Messages()}, nil
}

func (uc *implUseCase) Transcript(ctx context.Context, sc model.Scope) ([]model.ChatMessage, error) {
	conv, err := uc.conversation(sc)
	if err != nil {
		return nil, err
	}
	return conv.Messages(), nil
}

func (uc *implUseCase) conversation(sc model.Scope) (*support.Conversation, error) {
	if sc.SessionID == "" {
		return nil, support.ErrNoSession
	}
	return uc.sessions.GetOrCreate(sc.SessionID, func() (*support.Conversation, error) {
		return support.NewConversation(), nil
	})
}
