package usecase

import (
	"context"

	"farmpower-chat/internal/chat"
)

// EndSession removes a session from the store.
func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return chat.ErrMissingSessionID
	}
	if !uc.store.Delete(sessionID) {
		return chat.ErrSessionNotFound
	}

	uc.l.Infof(ctx, "chat.usecase.EndSession: session %s ended, %d live", sessionID, uc.store.Len())
	return nil
}
