package mem

import (
	"sync"
	"time"

	"culturehub/internal/services"
)

type entry struct {
	machine   *services.AttemptMachine
	expiresAt time.Time
}

// AttemptStore keeps in-flight quiz attempts in process memory. Attempts are
// transient: abandoning one (or letting the TTL lapse) simply means the next
// start begins again at question 0.
type AttemptStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		data: make(map[string]entry),
	}
}

func key(userID, quizID string) string { return userID + "/" + quizID }

func (s *AttemptStore) Put(userID, quizID string, m *services.AttemptMachine, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key(userID, quizID)] = entry{
		machine:   m,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *AttemptStore) Get(userID, quizID string) (*services.AttemptMachine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key(userID, quizID)]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key(userID, quizID)) // cleanup expired
		return nil, false
	}
	return e.machine, true
}

func (s *AttemptStore) Delete(userID, quizID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(userID, quizID))
}
