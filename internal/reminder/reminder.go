// Package reminder schedules abandoned-cart reminders. Scheduling state
// lives in Redis; due reminders are swept into Kafka by the worker, and
// actual push delivery is a downstream consumer's job.
package reminder

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// dueSetKey is a sorted set of user IDs scored by reminder due time
	// (unix seconds).
	dueSetKey = "cart:reminders"
	// countsKey maps user ID to the item count at scheduling time, so the
	// reminder message can say how many items are waiting.
	countsKey = "cart:reminder_counts"
)

// Scheduler arms and disarms one pending reminder per user. Scheduling
// again moves the due time forward, so the reminder fires only after the
// cart has been idle for the full delay.
type Scheduler struct {
	rdb   *redis.Client
	delay time.Duration
}

func NewScheduler(rdb *redis.Client, delay time.Duration) *Scheduler {
	return &Scheduler{rdb: rdb, delay: delay}
}

func (s *Scheduler) Schedule(ctx context.Context, userID string, itemCount int64) error {
	due := time.Now().Add(s.delay).Unix()

	pipe := s.rdb.TxPipeline()
	pipe.ZAdd(ctx, dueSetKey, redis.Z{Score: float64(due), Member: userID})
	pipe.HSet(ctx, countsKey, userID, itemCount)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Scheduler) Cancel(ctx context.Context, userID string) error {
	pipe := s.rdb.TxPipeline()
	pipe.ZRem(ctx, dueSetKey, userID)
	pipe.HDel(ctx, countsKey, userID)
	_, err := pipe.Exec(ctx)
	return err
}

// Due is one reminder ready to fire.
type Due struct {
	UserID    string
	ItemCount int64
}

// PopDue atomically removes and returns reminders whose due time has
// passed. Removal before publish means a crashed worker drops a reminder
// rather than duplicating it; reminders are best-effort.
func (s *Scheduler) PopDue(ctx context.Context, now time.Time, limit int64) ([]Due, error) {
	userIDs, err := s.rdb.ZRangeByScore(ctx, dueSetKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, nil
	}

	var due []Due
	for _, userID := range userIDs {
		count, err := s.rdb.HGet(ctx, countsKey, userID).Int64()
		if err != nil && err != redis.Nil {
			return due, err
		}

		if err := s.Cancel(ctx, userID); err != nil {
			return due, err
		}

		due = append(due, Due{UserID: userID, ItemCount: count})
	}
	return due, nil
}
