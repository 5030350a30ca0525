package recordsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/yanqian/trendlens/internal/domain/record"
	"github.com/yanqian/trendlens/internal/domain/trending"
)

// FixtureSource serves trending snapshots from a catalog file on disk.
// The file is read once and reused for every collection.
type FixtureSource struct {
	path   string
	logger *slog.Logger

	once sync.Once
	raws []record.Raw
	err  error
}

// NewFixtureSource builds a source over the catalog file at path.
func NewFixtureSource(path string, logger *slog.Logger) *FixtureSource {
	return &FixtureSource{
		path:   path,
		logger: logger.With("component", "recordsource.fixture"),
	}
}

// Collect implements trending.Source.
func (s *FixtureSource) Collect(_ context.Context, q trending.SourceQuery) ([]record.Raw, error) {
	s.once.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.err = fmt.Errorf("read catalog fixture: %w", err)
			return
		}
		s.raws, s.err = decodeCatalog(data)
		if s.err == nil {
			s.logger.Info("catalog fixture loaded", "path", s.path, "records", len(s.raws))
		}
	})
	if s.err != nil {
		return nil, s.err
	}
	return applyQuery(s.raws, q), nil
}

var _ trending.Source = (*FixtureSource)(nil)
