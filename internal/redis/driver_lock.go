package redis

import (
	"context"
	"time"

	"github.com/DevFrancisLab/saferoute/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// DriverLock serializes alert pipeline runs for the same driver across all
// instances. Two simultaneous checks for one phone must not both observe
// "not suppressed" and double-notify; SET NX with a TTL closes that race,
// and the TTL bounds locks left behind by a crashed holder.
type DriverLock struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewDriverLock(r *Redis) *DriverLock {
	return &DriverLock{client: r.Client, ttl: 10 * time.Second}
}

// Acquire polls until the lock is taken or the request context ends. The
// returned release func is safe to call once.
func (l *DriverLock) Acquire(ctx context.Context, driverPhone string) (func(), error) {
	key := "alerts:lock:" + driverPhone

	for {
		ok, err := l.client.SetNX(ctx, key, 1, l.ttl).Result()
		if err != nil {
			return nil, e.Wrap("redis.DriverLock.Acquire", err)
		}
		if ok {
			return func() {
				// best effort; TTL cleans up if this fails
				_ = l.client.Del(context.WithoutCancel(ctx), key).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, e.Wrap("redis.DriverLock.Acquire", e.ErrLockBusy)
		case <-time.After(50 * time.Millisecond):
		}
	}
}
