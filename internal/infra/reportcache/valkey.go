package reportcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/trendlens/internal/domain/trending"
)

// ValkeyStore caches rendered reports in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a cache backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "trendlens"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements trending.ReportStore.
func (s *ValkeyStore) Get(ctx context.Context, key string) (trending.Report, bool, error) {
	cmd := s.client.B().Get().Key(s.reportKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return trending.Report{}, false, nil
		}
		return trending.Report{}, false, err
	}
	var report trending.Report
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return trending.Report{}, false, err
	}
	return report, true, nil
}

// Set implements trending.ReportStore.
func (s *ValkeyStore) Set(ctx context.Context, key string, report trending.Report, ttl time.Duration) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.reportKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) reportKey(key string) string {
	return fmt.Sprintf("%s:report:%s", s.prefix, key)
}

var _ trending.ReportStore = (*ValkeyStore)(nil)
