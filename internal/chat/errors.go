package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyQuery       = errors.New("query is required")
	ErrQueryTooLong     = errors.New("query is too long")
	ErrMissingSessionID = errors.New("sessionId is required")
	ErrSessionNotFound  = errors.New("session not found")
	ErrTurnNotFound     = errors.New("message not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrProviderFailed   = errors.New("failed to get a response from the assistant")
)
