package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-astrologer/internal/domain/astrology"
	"github.com/yanqian/ai-astrologer/internal/domain/session"
)

func TestMemoryStoreSaveLoad(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	record := session.Record{
		ID:      "abc",
		Profile: astrology.Profile{Name: "Ada", Sign: astrology.Capricorn, Element: astrology.Earth, LifePath: 11},
	}

	require.NoError(t, store.Save(ctx, record, time.Hour))

	got, ok, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, record, got)

	_, ok, err = store.Load(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Load(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, session.Record{ID: "short"}, time.Minute))
	require.NoError(t, store.Save(ctx, session.Record{ID: "forever"}, 0))

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Load(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Load(ctx, "forever")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, store.Len())
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.Record{ID: "s", Profile: astrology.Profile{Name: "first"}}, 0))
	require.NoError(t, store.Save(ctx, session.Record{ID: "s", Profile: astrology.Profile{Name: "second"}}, 0))

	got, ok, err := store.Load(ctx, "s")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", got.Profile.Name)
}
