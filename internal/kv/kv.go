// Package kv keeps short-lived conversational state in redis: rate-limit
// windows, context caches, click history and sessions.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	clickHistorySize = 20
	clickHistoryTTL  = 7 * 24 * time.Hour
	nextActionTTL    = 30 * 24 * time.Hour
	sessionIdle      = 30 * time.Minute
)

// Session is the per-phone browsing session tracked across button clicks.
type Session struct {
	ID      string
	Clicks  int64
	Started time.Time
	IsNew   bool
}

type Store struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func New(client *redis.Client, prefix string, logger *zap.Logger) *Store {
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &Store{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (s *Store) key(parts ...string) string {
	return s.prefix + strings.Join(parts, ":")
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Allow counts one hit in the fixed window for bucket. When the limit is
// exceeded it reports how long until the window resets.
func (s *Store) Allow(ctx context.Context, bucket string, limit int, window time.Duration) (bool, time.Duration, error) {
	key := s.key("rl", bucket)

	// The window TTL is created together with the counter so a key can never
	// outlive its window.
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, key, 0, window)
		incr = pipe.Incr(ctx, key)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("failed to count rate limit hit: %w", err)
	}
	count := incr.Val()

	if count <= int64(limit) {
		return true, 0, nil
	}

	retry, err := s.client.PTTL(ctx, key).Result()
	if err == nil && retry == -time.Nanosecond {
		// Counter left without a TTL by an older writer.
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			s.logger.Warn("Failed to restore rate limit window", zap.String("bucket", bucket), zap.Error(err))
		}
	}
	if err != nil || retry <= 0 {
		retry = window
	}
	return false, retry, nil
}

// GetJSON decodes the cached value into dst. found is false on a miss.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Get(ctx, s.key("cache", key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

func (s *Store) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	if err := s.client.Set(ctx, s.key("cache", key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

func (s *Store) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key("cache", k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// RecordClick appends action to the phone's click history and counts the
// transition from the previous click. It returns the previous action.
func (s *Store) RecordClick(ctx context.Context, phone, action string) (string, error) {
	historyKey := s.key("clicks", phone)

	previous, err := s.client.LIndex(ctx, historyKey, 0).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read click history: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, action)
		pipe.LTrim(ctx, historyKey, 0, clickHistorySize-1)
		pipe.Expire(ctx, historyKey, clickHistoryTTL)
		if previous != "" && previous != action {
			nextKey := s.key("next", previous)
			pipe.ZIncrBy(ctx, nextKey, 1, action)
			pipe.Expire(ctx, nextKey, nextActionTTL)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}

	return previous, nil
}

// RecentClicks returns up to n distinct actions, most recent first.
func (s *Store) RecentClicks(ctx context.Context, phone string, n int) ([]string, error) {
	raw, err := s.client.LRange(ctx, s.key("clicks", phone), 0, clickHistorySize-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read click history: %w", err)
	}
	return distinct(raw, n), nil
}

// CommonNext returns the actions most often clicked right after action.
func (s *Store) CommonNext(ctx context.Context, action string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	next, err := s.client.ZRevRange(ctx, s.key("next", action), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read next actions: %w", err)
	}
	return next, nil
}

// TouchSession starts or extends the phone's session and counts a click.
func (s *Store) TouchSession(ctx context.Context, phone string) (*Session, error) {
	key := s.key("session", "phone", phone)
	now := time.Now().UTC()

	var created *redis.BoolCmd
	var values *redis.SliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		created = pipe.HSetNX(ctx, key, "id", uuid.NewString())
		pipe.HSetNX(ctx, key, "started", now.Unix())
		pipe.HIncrBy(ctx, key, "clicks", 1)
		pipe.Expire(ctx, key, sessionIdle)
		values = pipe.HMGet(ctx, key, "id", "started", "clicks")
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to touch session: %w", err)
	}

	vals := values.Val()
	session := &Session{IsNew: created.Val()}
	if len(vals) == 3 {
		session.ID, _ = vals[0].(string)
		session.Started = time.Unix(parseInt(vals[1]), 0).UTC()
		session.Clicks = parseInt(vals[2])
	}
	return session, nil
}

// CreateAdminSession issues a dashboard session token bound to agent.
func (s *Store) CreateAdminSession(ctx context.Context, agent string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key("session", token), agent, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

// AdminSession resolves a dashboard session token to its agent.
func (s *Store) AdminSession(ctx context.Context, token string) (string, bool, error) {
	agent, err := s.client.Get(ctx, s.key("session", token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return agent, true, nil
}

func distinct(items []string, n int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, n)
	for _, it := range items {
		if len(out) == n {
			break
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func parseInt(v any) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	var n int64
	_, _ = fmt.Sscan(s, &n)
	return n
}
