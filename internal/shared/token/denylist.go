package token

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "auth:denylist:"

func DenylistKey(jti string) string {
	return denylistPrefix + jti
}

// Denylist remembers revoked access token ids until they would expire anyway.
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(rdb *redis.Client) *Denylist {
	return &Denylist{rdb: rdb}
}

func (d *Denylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if d == nil || d.rdb == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, DenylistKey(jti), "1", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if d == nil || d.rdb == nil {
		return false, nil
	}
	n, err := d.rdb.Exists(ctx, DenylistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
