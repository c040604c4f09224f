package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Converse sends a user message within a session, creating the session when needed.
	Converse(ctx context.Context, input ConverseInput) (ConverseOutput, error)

	// History returns the turns of a session without refreshing it.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)

	// EndSession discards a session.
	EndSession(ctx context.Context, sessionID string) error

	// Feedback records a rating against an assistant turn.
	Feedback(ctx context.Context, input FeedbackInput) error
}
