package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrLockNotAcquired = errors.New("LOCK_NOT_ACQUIRED")

type Config struct {
	Enable     bool          `mapstructure:"enable"`
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	LockExpiry time.Duration `mapstructure:"lock_expiry"`
	LockTries  int           `mapstructure:"lock_tries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// Locker serializes work on a key across callers.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type RedisLocker struct {
	rs     *redsync.Redsync
	cfg    Config
	logger *zap.Logger
}

func NewRedisLocker(client redis.UniversalClient, cfg Config, logger *zap.Logger) *RedisLocker {
	if cfg.LockExpiry <= 0 {
		cfg.LockExpiry = 10 * time.Second
	}
	if cfg.LockTries <= 0 {
		cfg.LockTries = 32
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 50 * time.Millisecond
	}

	return &RedisLocker{rs: redsync.New(goredis.NewPool(client)), cfg: cfg, logger: logger}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	mutex := l.rs.NewMutex("lock:"+key,
		redsync.WithExpiry(l.cfg.LockExpiry),
		redsync.WithTries(l.cfg.LockTries),
		redsync.WithRetryDelay(l.cfg.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		l.logger.Warn("Failed to acquire lock", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrLockNotAcquired, key, err)
	}

	defer func() {
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); !ok || err != nil {
			l.logger.Error("Failed to release lock", zap.String("key", key), zap.Bool("ok", ok), zap.Error(err))
		}
	}()

	return fn(ctx)
}

// LocalLocker is a per-key in-process mutex for single-instance deployments.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

func (l *LocalLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	kl := l.acquireRef(key)
	defer l.releaseRef(key, kl)

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %v", ErrLockNotAcquired, key, ctx.Err())
	}
	defer func() { <-kl.ch }()

	return fn(ctx)
}

func (l *LocalLocker) acquireRef(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++

	return kl
}

func (l *LocalLocker) releaseRef(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

// NewRedisClient opens and pings the redis client backing RedisLocker.
func NewRedisClient(ctx context.Context, cfg Config, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis ping failed", zap.Error(err), zap.String("addr", cfg.Addr))
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))

	return client, nil
}
