package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/ai-astrologer/internal/domain/session"
)

type entry struct {
	record    session.Record
	expiresAt time.Time
}

// MemoryStore keeps session records in process memory for dev and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]entry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]entry),
		now:     time.Now,
	}
}

// Save implements session.Store.
func (s *MemoryStore) Save(_ context.Context, record session.Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.records[record.ID] = entry{record: record, expiresAt: exp}
	s.evictExpiredLocked(now)
	return nil
}

// Load implements session.Store.
func (s *MemoryStore) Load(_ context.Context, id string) (session.Record, bool, error) {
	if id == "" {
		return session.Record{}, false, nil
	}
	s.mu.RLock()
	e, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return session.Record{}, false, nil
	}
	if expired(e.expiresAt, s.now()) {
		s.mu.Lock()
		delete(s.records, id)
		s.mu.Unlock()
		return session.Record{}, false, nil
	}
	return e.record, true, nil
}

// Len reports how many records are held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStore) evictExpiredLocked(now time.Time) {
	for id, e := range s.records {
		if expired(e.expiresAt, now) {
			delete(s.records, id)
		}
	}
}

func expired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(now)
}

var _ session.Store = (*MemoryStore)(nil)
