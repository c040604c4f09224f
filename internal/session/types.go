package session

import (
	"time"

	"farmpower-chat/internal/model"
)

// Turn is one message of a conversation. Turns are append-only.
type Turn struct {
	ID        string
	Role      model.Role
	Content   string
	CreatedAt time.Time
}

// Feedback is a rating left by the user against an assistant turn.
type Feedback struct {
	TurnID    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Session is a conversation with one widget instance.
type Session struct {
	ID           string
	CreatedAt    time.Time
	LastActiveAt time.Time
	Turns        []Turn
	Feedback     []Feedback
}

func (s *Session) clone() Session {
	out := *s
	out.Turns = append([]Turn(nil), s.Turns...)
	out.Feedback = append([]Feedback(nil), s.Feedback...)
	return out
}

// Config configures a Store.
type Config struct {
	TTL           time.Duration    // idle time after which a session is swept
	SweepInterval time.Duration    // period of RunSweeper
	Now           func() time.Time // clock, time.Now when nil
}
