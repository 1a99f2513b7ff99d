package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/ai-astrologer/internal/domain/oracle"
	"github.com/yanqian/ai-astrologer/internal/domain/session"
	"github.com/yanqian/ai-astrologer/internal/infra/config"
	"github.com/yanqian/ai-astrologer/internal/infra/sessionstore"
	"github.com/yanqian/ai-astrologer/pkg/util"
)

func provideOracleConfig(cfg *config.Config) oracle.Config {
	return oracle.Config{
		SessionTTL:   cfg.Session.TTL,
		DefaultName:  cfg.Astrology.DefaultName,
		DefaultPlace: cfg.Astrology.DefaultPlace,
	}
}

func provideSessionConfig(cfg *config.Config) session.Config {
	return session.Config{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	}
}

// provideClock returns the clock deciding what "today" is for readings.
func provideClock(cfg *config.Config) (func() time.Time, error) {
	loc, err := util.LoadLocation(cfg.Astrology.Timezone)
	if err != nil {
		return nil, err
	}
	return util.Clock(loc), nil
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) session.Store {
	if cfg.Session.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("session valkey store enabled", "addr", cfg.Session.Redis.Addr)
			return sessionstore.NewValkeyStore(client, cfg.Session.Redis.Prefix)
		}
	}
	return sessionstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	if strings.Contains(cfg.Session.Redis.Addr, "://") {
		return valkey.ParseURL(cfg.Session.Redis.Addr)
	}
	return valkey.ClientOption{InitAddress: []string{cfg.Session.Redis.Addr}}, nil
}
