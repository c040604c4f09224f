package usecase

import (
	"context"

	"farmpower-chat/internal/chat"
)

// History returns a snapshot of a session.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	if sessionID == "" {
		return chat.HistoryOutput{}, chat.ErrMissingSessionID
	}

	sess, ok := uc.store.Snapshot(sessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}

	return chat.HistoryOutput{
		SessionID:    sess.ID,
		CreatedAt:    sess.CreatedAt,
		LastActiveAt: sess.LastActiveAt,
		Turns:        sess.Turns,
	}, nil
}
