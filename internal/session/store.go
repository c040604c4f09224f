package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgLog "farmpower-chat/pkg/log"
)

const (
	defaultTTL           = 24 * time.Hour
	defaultSweepInterval = 30 * time.Minute
)

// entry guards one session. Lock order is always entry.mu before Store.mu.
type entry struct {
	mu      sync.Mutex
	evicted bool
	sess    *Session
}

// Store keeps sessions in process memory.
type Store struct {
	l   pkgLog.Logger
	cfg Config

	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Store.
func New(l pkgLog.Logger, cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Store{
		l:       l,
		cfg:     cfg,
		entries: make(map[string]*entry),
	}
}

// GetOrCreate returns a lease on the session with the given id. Empty, unknown, expired
// or concurrently evicted ids get a freshly minted session instead.
// The caller must Release the lease.
func (s *Store) GetOrCreate(id string) *Lease {
	if lease, ok := s.Acquire(id); ok {
		return lease
	}

	now := s.cfg.Now()
	e := &entry{sess: &Session{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		LastActiveAt: now,
	}}
	e.mu.Lock()

	s.mu.Lock()
	s.entries[e.sess.ID] = e
	s.mu.Unlock()

	return &Lease{store: s, e: e, created: true}
}

// Acquire locks an existing live session. It never creates one.
func (s *Store) Acquire(id string) (*Lease, bool) {
	e, ok := s.lockLive(id)
	if !ok {
		return nil, false
	}
	return &Lease{store: s, e: e}, true
}

// Touch refreshes the last-active time of a live session.
func (s *Store) Touch(id string) bool {
	e, ok := s.lockLive(id)
	if !ok {
		return false
	}
	defer e.mu.Unlock()

	e.sess.LastActiveAt = s.cfg.Now()
	return true
}

// Snapshot returns a copy of a live session without refreshing it.
func (s *Store) Snapshot(id string) (Session, bool) {
	e, ok := s.lockLive(id)
	if !ok {
		return Session{}, false
	}
	defer e.mu.Unlock()

	return e.sess.clone(), true
}

// Delete removes a session. It waits for any lease on it to be released.
func (s *Store) Delete(id string) bool {
	e, ok := s.lockLive(id)
	if !ok {
		return false
	}
	defer e.mu.Unlock()

	s.evictLocked(e)
	return true
}

// Sweep removes every session idle for longer than the TTL and returns how many were removed.
// Sessions currently leased are skipped.
func (s *Store) Sweep() int {
	now := s.cfg.Now()

	s.mu.Lock()
	candidates := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		candidates = append(candidates, e)
	}
	s.mu.Unlock()

	removed := 0
	for _, e := range candidates {
		// A leased session is mid-turn and so not idle.
		if !e.mu.TryLock() {
			continue
		}
		if !e.evicted && s.expired(e.sess, now) {
			s.evictLocked(e)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Len returns the number of sessions held, including expired ones not yet swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RunSweeper calls Sweep every SweepInterval until ctx is done, then sweeps one last time.
func (s *Store) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	s.l.Infof(ctx, "session.Store.RunSweeper: started, ttl=%s interval=%s", s.cfg.TTL, s.cfg.SweepInterval)

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.l.Infof(ctx, "session.Store.RunSweeper: removed %d expired sessions, %d live", n, s.Len())
			}
		case <-ctx.Done():
			n := s.Sweep()
			s.l.Infof(context.Background(), "session.Store.RunSweeper: stopped, removed %d on exit, %d live", n, s.Len())
			return nil
		}
	}
}

// lockLive returns the entry for id with its lock held. Expired entries are evicted on the way.
func (s *Store) lockLive(id string) (*entry, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	if e.evicted {
		e.mu.Unlock()
		return nil, false
	}
	if s.expired(e.sess, s.cfg.Now()) {
		s.evictLocked(e)
		e.mu.Unlock()
		return nil, false
	}
	return e, true
}

// evictLocked requires e.mu to be held.
func (s *Store) evictLocked(e *entry) {
	e.evicted = true

	s.mu.Lock()
	if s.entries[e.sess.ID] == e {
		delete(s.entries, e.sess.ID)
	}
	s.mu.Unlock()
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.LastActiveAt) > s.cfg.TTL
}
