package usecase

import (
	"context"
	"strings"

	"farmpower-chat/internal/chat"
	"farmpower-chat/internal/session"
)

// Feedback records a rating against an assistant turn and refreshes the session.
func (uc *implUseCase) Feedback(ctx context.Context, input chat.FeedbackInput) error {
	if input.SessionID == "" {
		return chat.ErrMissingSessionID
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return chat.ErrInvalidRating
	}

	lease, ok := uc.store.Acquire(input.SessionID)
	if !ok {
		return chat.ErrSessionNotFound
	}
	defer lease.Release()

	if !lease.AddFeedback(session.Feedback{
		TurnID:  input.TurnID,
		Rating:  input.Rating,
		Comment: strings.TrimSpace(input.Comment),
	}) {
		return chat.ErrTurnNotFound
	}

	uc.l.Infof(ctx, "chat.usecase.Feedback: session=%s turn=%s rating=%d", input.SessionID, input.TurnID, input.Rating)
	return nil
}
