package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"farmpower-chat/config"
	"farmpower-chat/internal/chat"
	"farmpower-chat/pkg/log"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 90 * time.Second // covers the full LLM retry chain
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	production  bool
	rateLimit   config.RateLimitConfig

	// Chat domain
	chatUC chat.UseCase

	now func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Production  bool
	RateLimit   config.RateLimitConfig

	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string

	// Chat domain
	ChatUseCase chat.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		production:  cfg.Production,
		rateLimit:   cfg.RateLimit,
		chatUC:      cfg.ChatUseCase,
		now:         time.Now,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
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
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
