package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/support"
	pkgLog "holistic-daily/pkg/log"
)

// Sender delivers replies. *pkg/telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc support.UseCase, bot Sender) Handler {
	return &handler{
		l:    l,
		uc:   uc,
		bot:  bot,
		done: func() {},
	}
}
