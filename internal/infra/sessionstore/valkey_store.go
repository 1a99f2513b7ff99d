package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/ai-astrologer/internal/domain/session"
)

// ValkeyStore persists session records in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "astrologer"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Save(ctx context.Context, record session.Record, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.sessionKey(record.ID)).Value(string(payload))
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

func (s *ValkeyStore) Load(ctx context.Context, id string) (session.Record, bool, error) {
	if id == "" {
		return session.Record{}, false, nil
	}
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.sessionKey(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return session.Record{}, false, nil
		}
		return session.Record{}, false, err
	}
	var record session.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return session.Record{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return record, true, nil
}

func (s *ValkeyStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

var _ session.Store = (*ValkeyStore)(nil)
