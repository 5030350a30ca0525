package reportcache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/trendlens/internal/domain/trending"
)

type cachedReport struct {
	payload   trending.Report
	expiresAt time.Time
}

// MemoryStore is an in-process report cache for tests and for running
// without a Valkey instance.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]cachedReport
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]cachedReport)}
}

// Get implements trending.ReportStore.
func (s *MemoryStore) Get(_ context.Context, key string) (trending.Report, bool, error) {
	s.mu.RLock()
	entry, ok := s.reports[key]
	s.mu.RUnlock()
	if !ok {
		return trending.Report{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.reports, key)
		s.mu.Unlock()
		return trending.Report{}, false, nil
	}
	return entry.payload, true, nil
}

// Set implements trending.ReportStore.
func (s *MemoryStore) Set(_ context.Context, key string, report trending.Report, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.reports[key] = cachedReport{payload: report, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(expiresAt time.Time) bool {
	return !expiresAt.IsZero() && time.Now().After(expiresAt)
}

var _ trending.ReportStore = (*MemoryStore)(nil)
