package session

import (
	"context"
	"time"

	"github.com/yanqian/ai-astrologer/internal/domain/astrology"
)

// Record is the last profile derived for one interactive session.
type Record struct {
	ID        string            `json:"id"`
	Profile   astrology.Profile `json:"profile"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Store holds session records. Implementations expire records after ttl; a
// zero ttl keeps them until overwritten.
type Store interface {
	Save(ctx context.Context, record Record, ttl time.Duration) error
	Load(ctx context.Context, id string) (Record, bool, error)
}

// Config controls session handle signing.
type Config struct {
	Secret string
	TTL    time.Duration
}
