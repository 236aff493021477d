package session

import (
	"context"
	"sync"
	"time"
)

type memorySession struct {
	entries map[string]string
	touched time.Time
}

// MemoryStore keeps sessions in process memory. Used for local development
// and tests; contents are lost on restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	now      func() time.Time
}

func NewMemory() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession), now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string)
	if sess, ok := s.sessions[sessionID]; ok {
		for k, v := range sess.entries {
			out[k] = v
		}
	}
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &memorySession{entries: make(map[string]string)}
		s.sessions[sessionID] = sess
	}
	sess.entries[key] = value
	sess.touched = s.now()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(sess.entries, k)
	}
	if len(sess.entries) == 0 {
		delete(s.sessions, sessionID)
	}
	return nil
}

func (s *MemoryStore) Expire(_ context.Context, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	var removed int64
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			removed += int64(len(sess.entries))
			delete(s.sessions, id)
		}
	}
	return removed, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
