//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-astrologer/internal/bootstrap"
	"github.com/yanqian/ai-astrologer/internal/domain/oracle"
	"github.com/yanqian/ai-astrologer/internal/domain/session"
	"github.com/yanqian/ai-astrologer/internal/infra/config"
	httpiface "github.com/yanqian/ai-astrologer/internal/interface/http"
	"github.com/yanqian/ai-astrologer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOracleConfig,
		provideSessionConfig,
		provideClock,
		provideSessionStore,
		session.NewTokens,
		oracle.NewService,
		wire.Bind(new(oracle.TokenIssuer), new(*session.Tokens)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
