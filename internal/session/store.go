package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTTL             = 12 * time.Hour
	DefaultCleanupInterval = 15 * time.Minute
)

// Store holds every live session in memory. Nothing is persisted: a process
// restart clears all patient data, which is the intended behavior.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

// NewStore builds a store with the supplied idle TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create mints a new session with a UUID identity.
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), time.Now().UTC())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for the id and refreshes its idle clock.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	sess.touch(time.Now().UTC())
	return sess, true
}

// Delete drops a session outright.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the live session count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// TTL reports the configured idle lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// StartCleaner launches the expiry janitor until the context is cancelled.
func (s *Store) StartCleaner(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	go s.cleanupLoop(ctx, interval)
}

func (s *Store) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.evictExpired(time.Now().UTC()); n > 0 {
				log.Printf("evicted %d expired sessions", n)
			}
		}
	}
}

func (s *Store) evictExpired(now time.Time) int {
	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.expiredAt(now, s.ttl) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	return len(expired)
}
