package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps submission stamps in a process-lifetime map. Entries are
// never evicted; with one stamp per (ip, email) pair the footprint stays
// negligible for this site's traffic.
type MemoryStore struct {
	mu     sync.RWMutex
	stamps map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		stamps: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.stamps[key]
	return t, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamps[key] = t
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stamps, key)
	return nil
}
