package chat

import (
	"time"

	"farmpower-chat/internal/session"
)

// ConverseInput is the input for a chat turn.
type ConverseInput struct {
	Query     string
	SessionID string // optional; unknown ids get a new session
}

// ConverseOutput is the result of a chat turn. On ErrProviderFailed Response holds the fallback text.
type ConverseOutput struct {
	Response  string
	SessionID string
	Created   bool
	TurnCount int
}

// HistoryOutput is a read-only view of a session.
type HistoryOutput struct {
	SessionID    string
	CreatedAt    time.Time
	LastActiveAt time.Time
	Turns        []session.Turn
}

// FeedbackInput rates one assistant turn.
type FeedbackInput struct {
	SessionID string
	TurnID    string
	Rating    int // 1..5
	Comment   string
}
