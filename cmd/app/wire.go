//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/trendlens/internal/bootstrap"
	"github.com/yanqian/trendlens/internal/domain/topics"
	"github.com/yanqian/trendlens/internal/domain/trending"
	"github.com/yanqian/trendlens/internal/infra/config"
	httpiface "github.com/yanqian/trendlens/internal/interface/http"
	"github.com/yanqian/trendlens/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideTrendingConfig,
		provideTopicsConfig,
		provideSource,
		provideIdeaWriter,
		provideReportStore,
		topics.NewClusterer,
		trending.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
