package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/model"
	"holistic-daily/internal/support"
	pkgLog "holistic-daily/pkg/log"
	pkgResponse "holistic-daily/pkg/response"
	pkgTelegram "holistic-daily/pkg/telegram"
)

const (
	startText = "👋 Welcome to *Holistic Daily*!\n\nAsk me anything about nutrition, fitness or mental wellness and I'll do my best to help."
	helpText  = "*How to use:*\n\nJust type a question, for example:\n`What should I eat after a workout?`\n`How can I manage stress at work?`"
)

type handler struct {
	l   pkgLog.Logger
	uc  support.UseCase
	bot Sender

	done func() // called when a background reply finishes
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and answers in a background goroutine
// so a slow model never trips Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		defer h.done()

		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startText, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	}

	// Each chat keeps its own transcript
	sc := model.Scope{SessionID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}

	out, err := h.uc.Ask(ctx, sc, support.AskInput{Question: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Ask failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, support.Apology)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatAnswer(out.Answer))
}

// formatAnswer renders an answer with its sources as plain text.
func formatAnswer(a support.Answer) string {
	if len(a.Sources) == 0 {
		return a.Text
	}

	var b strings.Builder
	b.WriteString(a.Text)
	b.WriteString("\n\nSources:")
	for _, s := range a.Sources {
		fmt.Fprintf(&b, "\n• %s (%s)", s.Title, s.URL)
	}
	return b.String()
}
