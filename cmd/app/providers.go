package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/trendlens/internal/domain/topics"
	"github.com/yanqian/trendlens/internal/domain/trending"
	"github.com/yanqian/trendlens/internal/infra/config"
	"github.com/yanqian/trendlens/internal/infra/ideagen"
	"github.com/yanqian/trendlens/internal/infra/recordsource"
	"github.com/yanqian/trendlens/internal/infra/reportcache"
)

func provideTrendingConfig(cfg *config.Config) trending.Config {
	return trending.Config{
		DefaultRegion:   cfg.Source.DefaultRegion,
		MaxResults:      cfg.Source.MaxResults,
		ExtendedResults: cfg.Source.ExtendedResults,
		TopKeywords:     cfg.Engine.TopKeywords,
		CacheTTL:        cfg.Cache.TTL,
	}
}

func provideTopicsConfig(cfg *config.Config) topics.Config {
	return topics.Config{
		Clusters:     cfg.Engine.Clusters,
		Seed:         cfg.Engine.Seed,
		MaxTerms:     cfg.Engine.MaxTerms,
		SampleTitles: cfg.Engine.SampleTitles,
	}
}

func provideSource(cfg *config.Config, logger *slog.Logger) trending.Source {
	path := strings.TrimSpace(cfg.Source.FixturePath)
	if path == "" {
		logger.Info("source fixture path not set, using built-in demo records")
		return recordsource.NewStaticSource(recordsource.DemoRecords())
	}
	return recordsource.NewFixtureSource(path, logger)
}

func provideIdeaWriter() trending.IdeaWriter {
	return ideagen.NewTemplateWriter()
}

func provideReportStore(cfg *config.Config, logger *slog.Logger) trending.ReportStore {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return reportcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return reportcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("report valkey store enabled", "addr", cfg.Cache.Addr)
			return reportcache.NewValkeyStore(client, "trendlens")
		}
	}
	return reportcache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
