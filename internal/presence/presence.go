// Package presence tracks which users hold at least one live socket.
package presence

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

const onlineKey = "presence:online"

type Tracker interface {
	SetOnline(ctx context.Context, userID uint64) error
	SetOffline(ctx context.Context, userID uint64) error
	IsOnline(ctx context.Context, userID uint64) (bool, error)
	// OnlineAmong returns the subset of ids that are online.
	OnlineAmong(ctx context.Context, userIDs []uint64) (map[uint64]bool, error)
}

// RedisTracker keeps the online set in Redis so it can be read outside the
// process holding the sockets.
type RedisTracker struct {
	client redis.UniversalClient
}

func NewRedisTracker(client redis.UniversalClient) *RedisTracker {
	return &RedisTracker{client: client}
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (t *RedisTracker) SetOnline(ctx context.Context, userID uint64) error {
	return t.client.SAdd(ctx, onlineKey, member(userID)).Err()
}

func (t *RedisTracker) SetOffline(ctx context.Context, userID uint64) error {
	return t.client.SRem(ctx, onlineKey, member(userID)).Err()
}

func (t *RedisTracker) IsOnline(ctx context.Context, userID uint64) (bool, error) {
	return t.client.SIsMember(ctx, onlineKey, member(userID)).Result()
}

func (t *RedisTracker) OnlineAmong(ctx context.Context, userIDs []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	members := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		members[i] = member(id)
	}
	flags, err := t.client.SMIsMember(ctx, onlineKey, members...).Result()
	if err != nil {
		return nil, err
	}
	for i, id := range userIDs {
		if flags[i] {
			out[id] = true
		}
	}
	return out, nil
}

// Reset clears the online set. A restarted process holds no sockets, so
// anything left over is stale.
func (t *RedisTracker) Reset(ctx context.Context) error {
	return t.client.Del(ctx, onlineKey).Err()
}

func member(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}

// MemoryTracker is the in-process tracker used when Redis is disabled.
type MemoryTracker struct {
	mu     sync.RWMutex
	online map[uint64]struct{}
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{online: make(map[uint64]struct{})}
}

func (t *MemoryTracker) SetOnline(_ context.Context, userID uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.online[userID] = struct{}{}
	return nil
}

func (t *MemoryTracker) SetOffline(_ context.Context, userID uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.online, userID)
	return nil
}

func (t *MemoryTracker) IsOnline(_ context.Context, userID uint64) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.online[userID]
	return ok, nil
}

func (t *MemoryTracker) OnlineAmong(_ context.Context, userIDs []uint64) (map[uint64]bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[uint64]bool, len(userIDs))
	for _, id := range userIDs {
		if _, ok := t.online[id]; ok {
			out[id] = true
		}
	}
	return out, nil
}
