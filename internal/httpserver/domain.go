package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/board"
	boardHTTP "holistic-daily/internal/board/delivery/http"
	boardUC "holistic-daily/internal/board/usecase"
	"holistic-daily/internal/dailytask"
	taskHTTP "holistic-daily/internal/dailytask/delivery/http"
	taskUC "holistic-daily/internal/dailytask/usecase"
	"holistic-daily/internal/middleware"
	"holistic-daily/internal/onboarding"
	onboardingHTTP "holistic-daily/internal/onboarding/delivery/http"
	onboardingUC "holistic-daily/internal/onboarding/usecase"
	"holistic-daily/internal/support"
	supportHTTP "holistic-daily/internal/support/delivery/http"
	supportTelegram "holistic-daily/internal/support/delivery/telegram"
	supportUC "holistic-daily/internal/support/usecase"
	"holistic-daily/pkg/session"
)

// setupTaskDomains wires daily tasks and the board on top of them.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupTaskDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) dailytask.UseCase {
	tasks := taskUC.New(srv.l, srv.taskRepo, srv.generator, srv.calendar, srv.shareOrigin)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks), mw)

	boards := session.NewStore[*board.Board](srv.sessionSize, srv.sessionTTL)
	b := boardUC.New(srv.l, tasks, boards, srv.calendar, srv.shareOrigin)
	boardHTTP.RegisterRoutes(api, boardHTTP.New(srv.l, b), mw)

	srv.l.Infof(ctx, "Task and board domains registered")
	return tasks
}

func (srv HTTPServer) setupOnboardingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	wizards := session.NewStore[*onboarding.Wizard](srv.sessionSize, srv.sessionTTL)
	uc := onboardingUC.New(srv.l, srv.generator, wizards)
	onboardingHTTP.RegisterRoutes(api, onboardingHTTP.New(srv.l, uc), mw)

	srv.l.Infof(ctx, "Onboarding domain registered")
}

// setupSupportDomain registers the chat API and, when a bot is configured, the Telegram webhook.
func (srv HTTPServer) setupSupportDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	chats := session.NewStore[*support.Conversation](srv.sessionSize, srv.sessionTTL)
	uc := supportUC.New(srv.l, srv.supportProvider, chats)
	supportHTTP.RegisterRoutes(api, supportHTTP.New(srv.l, uc), mw)
	srv.l.Infof(ctx, "Support domain registered with %s provider", srv.supportProvider.Name())

	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return
	}
	tg := supportTelegram.New(srv.l, uc, srv.telegramBot)
	srv.gin.POST("/webhook/telegram", tg.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}
