package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CreativeUnicorns/loopsettings"
)

// MockRedisClient is a mock implementation of redisClient
type MockRedisClient struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	_, _ = ctx.Deadline()
	if m.failErr != nil {
		return redis.NewStringResult("", m.failErr)
	}
	val, exists := m.data[key]
	if !exists {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	_, _ = ctx.Deadline()
	if m.failErr != nil {
		return redis.NewStatusResult("", m.failErr)
	}
	if b, ok := value.([]byte); ok {
		m.data[key] = string(b)
	} else {
		m.data[key] = value.(string)
	}
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *MockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	_, _ = ctx.Deadline()
	if m.failErr != nil {
		return redis.NewIntResult(0, m.failErr)
	}
	count := 0
	for _, key := range keys {
		if _, exists := m.data[key]; exists {
			delete(m.data, key)
			count++
		}
	}
	return redis.NewIntResult(int64(count), nil)
}

func (m *MockRedisClient) Close() error {
	return nil
}

func TestRedisCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	mockClient := NewMockRedisClient()
	redisCache := &RedisCache{client: mockClient}

	if err := redisCache.Set(ctx, "redisKey", "test_value", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if mockClient.data["redisKey"] != `"test_value"` {
		t.Errorf("Expected JSON-encoded value in redis, got %q", mockClient.data["redisKey"])
	}
	if mockClient.ttls["redisKey"] != time.Minute {
		t.Errorf("Expected ttl to be forwarded, got %v", mockClient.ttls["redisKey"])
	}

	val, err := redisCache.Get(ctx, "redisKey")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "test_value" {
		t.Errorf("Expected test_value, got %#v", val)
	}

	if err := redisCache.Delete(ctx, "redisKey"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := redisCache.Get(ctx, "redisKey"); !errors.Is(err, loopsettings.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRedisCache_Errors(t *testing.T) {
	ctx := context.Background()
	mockClient := NewMockRedisClient()
	redisCache := &RedisCache{client: mockClient}

	mockClient.data["garbled"] = "{not json"
	if _, err := redisCache.Get(ctx, "garbled"); err == nil {
		t.Error("Expected an error decoding a garbled value")
	}

	if err := redisCache.Set(ctx, "fn", func() {}, time.Minute); err == nil {
		t.Error("Expected an error marshaling a func value")
	}

	mockClient.failErr = errors.New("connection refused")
	if _, err := redisCache.Get(ctx, "any"); !errors.Is(err, loopsettings.ErrCacheUnavailable) {
		t.Errorf("Expected ErrCacheUnavailable from Get, got %v", err)
	}
	if err := redisCache.Set(ctx, "any", "v", time.Minute); !errors.Is(err, loopsettings.ErrCacheUnavailable) {
		t.Errorf("Expected ErrCacheUnavailable from Set, got %v", err)
	}
	if err := redisCache.Delete(ctx, "any"); !errors.Is(err, loopsettings.ErrCacheUnavailable) {
		t.Errorf("Expected ErrCacheUnavailable from Delete, got %v", err)
	}
}

func TestRedisCache_Close(t *testing.T) {
	redisCache := &RedisCache{client: NewMockRedisClient()}
	if err := redisCache.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
