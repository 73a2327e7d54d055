package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process. Entries are stored encoded so
// callers never share slices with the stored copy. Expired entries are swept
// on write, at most once per TTL.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	s.ID = newID()
	s.CreatedAt = m.now()
	return m.write(s, false)
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		m.deleteIfExpired(id, m.now())
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	var s Session
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &s, nil
}

// Save fails with ErrNotFound once the session has expired, even if it has
// not been swept yet.
func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	return m.write(s, true)
}

func (m *MemoryStore) write(s *Session, mustExist bool) error {
	now := m.now()
	expiresAt := s.ExpiresAt
	s.ExpiresAt = now.Add(m.ttl)

	data, err := json.Marshal(s)
	if err != nil {
		s.ExpiresAt = expiresAt
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if mustExist {
		if m.deleteIfExpired(s.ID, now) {
			s.ExpiresAt = expiresAt
			return ErrNotFound
		}
		if _, ok := m.sessions[s.ID]; !ok {
			s.ExpiresAt = expiresAt
			return ErrNotFound
		}
	}
	if now.Sub(m.lastSweep) >= m.ttl {
		m.sweep(now)
	}

	m.sessions[s.ID] = memoryEntry{data: data, expiresAt: s.ExpiresAt}
	return nil
}

// deleteIfExpired must be called with mu held.
func (m *MemoryStore) deleteIfExpired(id string, now time.Time) bool {
	entry, ok := m.sessions[id]
	if !ok || now.Before(entry.expiresAt) {
		return false
	}
	delete(m.sessions, id)
	return true
}

// sweep must be called with mu held.
func (m *MemoryStore) sweep(now time.Time) {
	for id, entry := range m.sessions {
		if !now.Before(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
	m.lastSweep = now
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.sessions = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}
