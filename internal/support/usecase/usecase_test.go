package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
	"holistic-daily/internal/support/provider/keyword"
	pkgLog "holistic-daily/pkg/log"
	"holistic-daily/pkg/session"
)

type mockProvider struct {
	answer support.Answer
	err    error
	panic  bool
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Answer(context.Context, string) (support.Answer, error) {
	if m.panic {
		panic("boom")
	}
	return m.answer, m.err
}

func newTestUseCase(p support.Provider) support.UseCase {
	return New(pkgLog.NewNop(), p, session.NewStore[*support.Conversation](10, time.Minute))
}

func TestAnswer_Degrades(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockProvider
		want     string
	}{
		{name: "ok", provider: &mockProvider{answer: support.Answer{Text: "hi"}}, want: "hi"},
		{name: "error", provider: &mockProvider{err: errors.New("timeout")}, want: support.Apology},
		{name: "panic", provider: &mockProvider{panic: true}, want: support.Apology},
		{name: "empty", provider: &mockProvider{}, want: support.Apology},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestUseCase(tt.provider).Answer(context.Background(), "question")
			assert.Equal(t, tt.want, a.Text)
			if tt.want == support.Apology {
				assert.Empty(t, a.Sources)
			}
		})
	}
}

func TestAnswer_KeywordTable(t *testing.T) {
	uc := newTestUseCase(keyword.New(nil))

	a := uc.Answer(context.Background(), "What should I eat before a run?")
	require.Len(t, a.Sources, 1)
	assert.Equal(t, "Nutrition Basics", a.Sources[0].Title)
}

func TestAsk_Transcript(t *testing.T) {
	uc := newTestUseCase(keyword.New(nil))
	ctx := context.Background()
	sc := model.Scope{SessionID: "s1"}

	out, err := uc.Ask(ctx, sc, support.AskInput{Question: "  exercise ideas?  "})
	require.NoError(t, err)
	assert.Equal(t, "Fitness Guidelines", out.Answer.Sources[0].Title)
	require.Len(t, out.Transcript, 3)
	assert.Equal(t, support.Greeting, out.Transcript[0].Content)
	assert.Equal(t, "exercise ideas?", out.Transcript[1].Content)
	assert.Equal(t, model.ChatRoleAssistant, out.Transcript[2].Role)

	msgs, err := uc.Transcript(ctx, sc)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	other, err := uc.Transcript(ctx, model.Scope{SessionID: "s2"})
	require.NoError(t, err)
	assert.Len(t, other, 1, "sessions do not share transcripts")
}

func TestAsk_Errors(t *testing.T) {
	uc := newTestUseCase(keyword.New(nil))

	_, err := uc.Ask(context.Background(), model.Scope{SessionID: "s"}, support.AskInput{Question: "   "})
	assert.ErrorIs(t, err, support.ErrEmptyQuestion)

	_, err = uc.Ask(context.Background(), model.Scope{}, support.AskInput{Question: "hi"})
	assert.ErrorIs(t, err, support.ErrNoSession)
}

func TestAsk_Concurrent(t *testing.T) {
	uc := newTestUseCase(keyword.New(nil))
	sc := model.Scope{SessionID: "shared"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Ask(context.Background(), sc, support.AskInput{Question: "stress"})
		}()
	}
	wg.Wait()

	msgs, err := uc.Transcript(context.Background(), sc)
	require.NoError(t, err)
	assert.Len(t, msgs, 41)
}
