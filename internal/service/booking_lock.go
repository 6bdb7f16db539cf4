package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-scheduler/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrBookingLockBusy is surfaced when the per-doctor lock could not be
// acquired within the configured wait. The failure is retryable; the caller's
// booking was never attempted.
var ErrBookingLockBusy = errors.New("doctor schedule is busy, please retry")

const lockPollInterval = 25 * time.Millisecond

// BookingLock serializes the read-check-write section of every mutating
// booking operation per doctor, across processes. Holding the lock makes the
// conflict evaluation and the subsequent write one atomic unit with respect
// to concurrent writers on other instances.
type BookingLock interface {
	WithDoctorLock(ctx context.Context, doctorID string, fn func(ctx context.Context) error) error
}

type redisBookingLock struct {
	client *redis.Client
	log    *logrus.Logger
	wait   time.Duration
	ttl    time.Duration
}

func NewRedisBookingLock(client *redis.Client, log *logrus.Logger, cfg config.SchedulingConfig) BookingLock {
	return &redisBookingLock{
		client: client,
		log:    log,
		wait:   cfg.LockWait,
		ttl:    cfg.LockTTL,
	}
}

// releaseScript deletes the lock key only if this process still owns it, so
// a lock that expired and was re-acquired elsewhere is never released by the
// previous holder.
var releaseScript = redis.NewScript(`
	local val = redis.call("GET", KEYS[1])
	if val == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

func (l *redisBookingLock) WithDoctorLock(ctx context.Context, doctorID string, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:doctor:%s", doctorID)
	token := uuid.NewString()

	if err := l.acquire(ctx, key, token); err != nil {
		return err
	}
	defer func() {
		if err := l.release(context.WithoutCancel(ctx), key, token); err != nil {
			l.log.Warnf("Failed to release booking lock %s: %+v", key, err)
		}
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// acquire polls SETNX until the lock is held or the bounded wait elapses.
func (l *redisBookingLock) acquire(ctx context.Context, key, token string) error {
	deadline := time.Now().Add(l.wait)
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("acquire booking lock: %w", err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrBookingLockBusy
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}
}

func (l *redisBookingLock) release(ctx context.Context, key, token string) error {
	_, err := releaseScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release booking lock: %w", err)
	}
	return nil
}
