package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/google/uuid"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/history"
)

var ErrSessionNotFound = errors.New("session not found")

const janitorInterval = 5 * time.Minute

// Session is one anonymous caller and its bounded password history.
type Session struct {
	ID        string
	History   *history.Ring
	CreatedAt time.Time
	LastSeen  time.Time
}

// SessionStore keeps sessions in memory, keyed by ID. Sessions idle longer
// than the TTL are dropped by a background janitor. All history access goes
// through the store so the rings stay guarded by one mutex.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	clock    clock.Clock
	ttl      time.Duration
	capacity int
}

// NewSessionStore creates a store whose sessions hold up to capacity history
// entries each and expire after ttl of inactivity.
func NewSessionStore(clk clock.Clock, ttl time.Duration, capacity int) *SessionStore {
	if capacity <= 0 {
		capacity = history.DefaultCapacity
	}
	s := &SessionStore{
		sessions: make(map[string]*Session),
		clock:    clk,
		ttl:      ttl,
		capacity: capacity,
	}
	go s.janitor()
	return s
}

// Create registers a new session with an empty history ring.
func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		History:   history.NewRing(s.capacity),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Record appends a history entry to the session's ring.
func (s *SessionStore) Record(id string, e history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.LastSeen = s.clock.Now()
	sess.History.Add(e)
	return nil
}

// Entries returns a copy of the session's history, newest first.
func (s *SessionStore) Entries(id string) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.LastSeen = s.clock.Now()
	return sess.History.Entries(), nil
}

// Clear empties the session's history.
func (s *SessionStore) Clear(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	sess.LastSeen = s.clock.Now()
	sess.History.Clear()
	return nil
}

// Capacity reports the history capacity sessions are created with.
func (s *SessionStore) Capacity() int {
	return s.capacity
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) janitor() {
	for {
		time.Sleep(janitorInterval)
		s.removeExpired()
	}
}

// removeExpired drops sessions idle past the TTL and reports how many went.
func (s *SessionStore) removeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
