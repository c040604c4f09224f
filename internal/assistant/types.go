package assistant

import (
	"time"

	"farmpower-chat/internal/session"
)

// Conversation is the session a Converse call reads from and appends to.
// It is implemented by *session.Lease.
type Conversation interface {
	ID() string
	History() []session.Turn
	Append(turns ...session.Turn)
}

// Config configures the Gateway.
type Config struct {
	SystemPrompt    string
	MaxHistoryTurns int           // most recent turns sent as context
	Timeout         time.Duration // per Converse call
	Temperature     float64
	MaxTokens       int
	LogQueryContent bool // log raw user text, otherwise only its length
}
