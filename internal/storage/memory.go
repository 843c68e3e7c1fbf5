// internal/storage/memory.go
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps settings in memory. Used by tests and headless simulations.
type MemoryStore struct {
	mu     sync.Mutex
	ints   map[string]int
	floats map[string]float64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ints:   make(map[string]int),
		floats: make(map[string]float64),
	}
}

func (s *MemoryStore) GetInt(_ context.Context, key string, def int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.ints[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *MemoryStore) SetInt(_ context.Context, key string, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints[key] = v
	return nil
}

func (s *MemoryStore) GetFloat(_ context.Context, key string, def float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.floats[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *MemoryStore) SetFloat(_ context.Context, key string, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats[key] = v
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ints, key)
	delete(s.floats, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// MemoryRuns keeps run records in memory, newest last.
type MemoryRuns struct {
	mu   sync.Mutex
	runs []RunRecord
}

func NewMemoryRuns() *MemoryRuns {
	return &MemoryRuns{}
}

func (r *MemoryRuns) Insert(_ context.Context, rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, rec)
	return rec.ID, nil
}

func (r *MemoryRuns) Recent(_ context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunRecord, 0, min(limit, len(r.runs)))
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.runs[i])
	}
	return out, nil
}
