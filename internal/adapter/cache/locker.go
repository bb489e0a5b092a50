package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

const (
	lockTTL      = 10 * time.Second
	lockAttempts = 5
	lockBackoff  = 50 * time.Millisecond
)

// releaseScript deletes the lock only if it still holds our token, so an
// expired lock grabbed by another process is never released by us.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serializes writers per aggregate with Redis SetNX leases.
type Locker struct {
	client *goredis.Client
}

// NewLocker constructs a Redis-backed locker.
func NewLocker(client *goredis.Client) *Locker {
	return &Locker{client: client}
}

var _ core.Locker = (*Locker)(nil)

// Lock acquires the named lock, retrying briefly before giving up.
func (l *Locker) Lock(ctx context.Context, key string) (core.UnlockFunc, error) {
	token := uuid.NewString()
	redisKey := "lock:" + key

	for attempt := 0; attempt < lockAttempts; attempt++ {
		ok, err := l.client.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func(ctx context.Context) {
				_ = releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockBackoff << attempt):
		}
	}

	return nil, fmt.Errorf("lock %s: holder did not release in time", key)
}
