package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-astrologer/internal/infra/config"
	"github.com/yanqian/ai-astrologer/internal/infra/sessionstore"
)

func TestProvideSessionStoreFallsBackToMemory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	_, ok := provideSessionStore(cfg, logger).(*sessionstore.MemoryStore)
	require.True(t, ok)

	cfg.Session.Redis = config.RedisConfig{Enabled: true, Addr: "redis://%zz"}
	_, ok = provideSessionStore(cfg, logger).(*sessionstore.MemoryStore)
	require.True(t, ok)
}

func TestBuildValkeyOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Redis.Addr = "localhost:6379"
	opt, err := buildValkeyOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	cfg.Session.Redis.Addr = "redis://cache.internal:6380/0"
	opt, err = buildValkeyOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"cache.internal:6380"}, opt.InitAddress)
}

func TestProvideClockUsesConfiguredZone(t *testing.T) {
	cfg := &config.Config{}
	cfg.Astrology.Timezone = "Asia/Tokyo"
	clock, err := provideClock(cfg)
	require.NoError(t, err)
	name, _ := clock().Zone()
	require.Equal(t, "JST", name)

	cfg.Astrology.Timezone = "Nowhere/Land"
	_, err = provideClock(cfg)
	require.Error(t, err)

	require.Equal(t, time.Hour, provideOracleConfig(&config.Config{Session: config.SessionConfig{TTL: time.Hour}}).SessionTTL)
}
