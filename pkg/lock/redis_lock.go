package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// OwnerLock serializes absorption per owner. The idempotence check and the
// subsequent writes are separate operations; without the lock two concurrent
// absorptions for the same owner can both pass the check.
type OwnerLock struct {
	client *redis.Client
	ttl    time.Duration
}

func NewOwnerLock(redisURL string, ttl time.Duration) (*OwnerLock, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &OwnerLock{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

// Acquire takes the per-owner lock, returning a release func. ok is false if
// another absorption holds the lock.
func (l *OwnerLock) Acquire(ctx context.Context, ownerID uuid.UUID) (release func(), ok bool, err error) {
	key := "absorb-lock:" + ownerID.String()
	token := uuid.NewString()

	ok, err = l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}

	release = func() {
		// Release only our own token; an expired lock may have been re-taken.
		const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		l.client.Eval(context.Background(), script, []string{key}, token)
	}
	return release, true, nil
}

func (l *OwnerLock) Close() error {
	return l.client.Close()
}
