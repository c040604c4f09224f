package assistant

import (
	"context"

	"farmpower-chat/pkg/llmprovider"
	pkgLog "farmpower-chat/pkg/log"
)

// Generator produces a completion. *llmprovider.Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Gateway turns a conversation and a new user message into an assistant reply.
type Gateway interface {
	// Converse sends the conversation plus userText to the provider. On success the user turn
	// and the reply are appended to conv together. On failure conv is left unchanged and the
	// returned text is FallbackMessage alongside an error wrapping ErrProviderFailed.
	Converse(ctx context.Context, conv Conversation, userText string) (string, error)
}

type implGateway struct {
	l   pkgLog.Logger
	llm Generator
	cfg Config
}

// New creates a Gateway.
func New(l pkgLog.Logger, llm Generator, cfg Config) Gateway {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = SystemPrompt
	}
	if cfg.MaxHistoryTurns <= 0 {
		cfg.MaxHistoryTurns = defaultMaxHistoryTurns
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &implGateway{
		l:   l,
		llm: llm,
		cfg: cfg,
	}
}
