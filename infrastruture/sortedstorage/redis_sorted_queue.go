package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var _ i.SortedQueue = &RedisSortedQueue{}

// RedisSortedQueue manages capped sorted sets in Redis with TTL support.
type RedisSortedQueue struct {
	client  *redis.Client
	locker  *redsync.Redsync
	ttl     time.Duration
	maxSize int64
}

// NewRedisSortedQueue initializes a RedisSortedQueue. Each set keeps at most
// maxSize members (the lowest scores); maxSize <= 0 disables the cap.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int, maxSize int64) *RedisSortedQueue {
	queue := &RedisSortedQueue{
		client:  client,
		ttl:     time.Duration(ttlSeconds) * time.Second,
		maxSize: maxSize,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue
}

// Enqueue adds a member with a given score, trims the set back to its cap
// and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	mutex := rsq.locker.NewMutex(queueKey + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	if rsq.maxSize > 0 {
		if err := rsq.client.ZRemRangeByRank(ctx, queueKey, rsq.maxSize, -1).Err(); err != nil {
			return err
		}
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// Tops retrieves up to amount members with the lowest scores.
func (rsq *RedisSortedQueue) Tops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	if amount <= 0 {
		return nil, nil
	}
	return rsq.client.ZRange(ctx, queueKey, 0, amount-1).Result()
}

// Count returns the number of members in the sorted set.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
