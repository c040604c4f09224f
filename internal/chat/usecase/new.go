package usecase

import (
	"farmpower-chat/internal/assistant"
	"farmpower-chat/internal/chat"
	"farmpower-chat/internal/session"
	pkgLog "farmpower-chat/pkg/log"
)

const (
	defaultMaxQueryLength = 2000
	minRating             = 1
	maxRating             = 5
)

type implUseCase struct {
	l              pkgLog.Logger
	store          *session.Store
	gateway        assistant.Gateway
	maxQueryLength int
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	store *session.Store,
	gateway assistant.Gateway,
	maxQueryLength int,
) chat.UseCase {
	if maxQueryLength <= 0 {
		maxQueryLength = defaultMaxQueryLength
	}
	return &implUseCase{
		l:              l,
		store:          store,
		gateway:        gateway,
		maxQueryLength: maxQueryLength,
	}
}
