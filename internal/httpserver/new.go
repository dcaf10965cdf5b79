package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/catalog"
	"holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/support"
	supportTelegram "holistic-daily/internal/support/delivery/telegram"
	"holistic-daily/pkg/datemath"
	"holistic-daily/pkg/jwt"
	"holistic-daily/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string

	// Auth
	jwtManager      *jwt.Manager
	rateLimitPerMin int

	// Daily tasks
	taskRepo    repository.Repository
	generator   *catalog.Generator
	calendar    *datemath.Parser
	shareOrigin string

	// Sessions
	sessionTTL  time.Duration
	sessionSize int

	// Support
	supportProvider support.Provider
	telegramBot     supportTelegram.Sender
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	JWTManager      *jwt.Manager
	RateLimitPerMin int

	TaskRepo    repository.Repository
	Generator   *catalog.Generator
	Calendar    *datemath.Parser
	ShareOrigin string

	SessionTTL  time.Duration
	SessionSize int

	SupportProvider support.Provider

	// TelegramBot is optional; the webhook route is only mounted when set.
	TelegramBot supportTelegram.Sender
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		jwtManager:      cfg.JWTManager,
		rateLimitPerMin: cfg.RateLimitPerMin,
		taskRepo:        cfg.TaskRepo,
		generator:       cfg.Generator,
		calendar:        cfg.Calendar,
		shareOrigin:     cfg.ShareOrigin,
		sessionTTL:      cfg.SessionTTL,
		sessionSize:     cfg.SessionSize,
		supportProvider: cfg.SupportProvider,
		telegramBot:     cfg.TelegramBot,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.taskRepo == nil || srv.generator == nil || srv.calendar == nil {
		return errors.New("task repository, generator and calendar are required")
	}
	if srv.supportProvider == nil {
		return errors.New("support provider is required")
	}
	return nil
}
