package mirror

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"mobipos/backend/internal/domain"
)

type RedisMirror struct {
	client *redis.Client
}

func NewRedisMirror(addr string, password string, db int) *RedisMirror {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisMirror{client: client}
}

func (m *RedisMirror) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisMirror) Close() error {
	return m.client.Close()
}

// Save overwrites the remote document unconditionally. Two sessions writing
// the same account clobber each other; that is the accepted semantics.
func (m *RedisMirror) Save(ctx context.Context, accountID string, data *domain.AppData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, "mobipos:appdata:"+accountID, payload, 0).Err()
}
