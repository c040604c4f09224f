package session

import (
	"github.com/google/uuid"

	"farmpower-chat/internal/model"
)

// Lease is a locked handle on one session, held for the duration of one turn.
// A Lease is not safe for use by multiple goroutines.
type Lease struct {
	store    *Store
	e        *entry
	created  bool
	released bool
}

// ID returns the resolved session identifier.
func (l *Lease) ID() string {
	return l.e.sess.ID
}

// Created reports whether the session was minted by this lease.
func (l *Lease) Created() bool {
	return l.created
}

// Session returns a copy of the leased session.
func (l *Lease) Session() Session {
	return l.e.sess.clone()
}

// History returns a copy of the session's turns in order.
func (l *Lease) History() []Turn {
	return append([]Turn(nil), l.e.sess.Turns...)
}

// Append adds turns in order and refreshes the session.
// Missing ids and timestamps are filled in; timestamps never go backwards.
func (l *Lease) Append(turns ...Turn) {
	now := l.store.cfg.Now()
	sess := l.e.sess

	for _, t := range turns {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if n := len(sess.Turns); n > 0 && t.CreatedAt.Before(sess.Turns[n-1].CreatedAt) {
			t.CreatedAt = sess.Turns[n-1].CreatedAt
		}
		sess.Turns = append(sess.Turns, t)
	}
	sess.LastActiveAt = now
}

// Turn looks up a turn by id.
func (l *Lease) Turn(id string) (Turn, bool) {
	for _, t := range l.e.sess.Turns {
		if t.ID == id {
			return t, true
		}
	}
	return Turn{}, false
}

// AddFeedback records feedback against an assistant turn and refreshes the session.
// It reports false when turnID is not an assistant turn of this session.
func (l *Lease) AddFeedback(f Feedback) bool {
	t, ok := l.Turn(f.TurnID)
	if !ok || t.Role != model.RoleAssistant {
		return false
	}

	now := l.store.cfg.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	l.e.sess.Feedback = append(l.e.sess.Feedback, f)
	l.e.sess.LastActiveAt = now
	return true
}

// Touch refreshes the session's last-active time.
func (l *Lease) Touch() {
	l.e.sess.LastActiveAt = l.store.cfg.Now()
}

// Release unlocks the session. Calling it more than once is a no-op.
func (l *Lease) Release() {
	if l.released {
		return
	}
	l.released = true
	l.e.mu.Unlock()
}
