package kv_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/kv"
)

func setupTestStore(t *testing.T) (*kv.Store, func()) {
	t.Helper()
	client, cleanup := setupTestRedis(t)
	return kv.New(client, "test", zap.NewNop()), cleanup
}

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	require.NoError(t, client.Ping(ctx).Err())

	cleanup := func() {
		_ = client.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return client, cleanup
}

func TestStore_Allow(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		ok, _, err := store.Allow(ctx, "click:919876543210", 20, time.Minute)
		require.NoError(t, err)
		require.True(t, ok, "hit %d should pass", i+1)
	}

	ok, retry, err := store.Allow(ctx, "click:919876543210", 20, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Minute)

	ok, _, err = store.Allow(ctx, "click:919800000000", 20, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "buckets are independent")
}

func TestStore_AllowWindowResets(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	ok, _, err := store.Allow(ctx, "ip:10.0.0.1", 1, time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = store.Allow(ctx, "ip:10.0.0.1", 1, time.Second)
	require.NoError(t, err)
	require.False(t, ok)

	time.Sleep(1100 * time.Millisecond)

	ok, _, err = store.Allow(ctx, "ip:10.0.0.1", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_AllowAlwaysSetsWindow(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()
	store := kv.New(client, "test", zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := store.Allow(ctx, "msg:919876543210", 2, time.Minute)
		require.NoError(t, err)

		ttl, err := client.PTTL(ctx, "test:rl:msg:919876543210").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0), "hit %d left the counter without a ttl", i+1)
		assert.LessOrEqual(t, ttl, time.Minute)
	}

	count, err := client.Get(ctx, "test:rl:msg:919876543210").Int()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// A counter written without a TTL gets its window back once it blocks.
	require.NoError(t, client.Set(ctx, "test:rl:legacy", 5, 0).Err())
	ok, retry, err := store.Allow(ctx, "legacy", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)
	ttl, err := client.PTTL(ctx, "test:rl:legacy").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestStore_Cache(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	type snapshot struct {
		Name  string `json:"name"`
		Items int    `json:"items"`
	}

	var got snapshot
	found, err := store.GetJSON(ctx, "ctx:919876543210", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetJSON(ctx, "ctx:919876543210", snapshot{Name: "Asha", Items: 2}, time.Minute))

	found, err = store.GetJSON(ctx, "ctx:919876543210", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snapshot{Name: "Asha", Items: 2}, got)

	require.NoError(t, store.Invalidate(ctx, "ctx:919876543210"))
	found, err = store.GetJSON(ctx, "ctx:919876543210", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_ClickHistory(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	phone := "919876543210"
	for _, action := range []string{"MAIN_MENU", "JEWELLERY_MENU", "MAIN_MENU", "JEWELLERY_MENU", "OFFERS_MENU"} {
		_, err := store.RecordClick(ctx, phone, action)
		require.NoError(t, err)
	}

	recent, err := store.RecentClicks(ctx, phone, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"OFFERS_MENU", "JEWELLERY_MENU", "MAIN_MENU"}, recent)

	next, err := store.CommonNext(ctx, "MAIN_MENU", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"JEWELLERY_MENU"}, next)

	prev, err := store.RecordClick(ctx, phone, "CHAT_MENU")
	require.NoError(t, err)
	assert.Equal(t, "OFFERS_MENU", prev)
}

func TestStore_Sessions(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first, err := store.TouchSession(ctx, "919876543210")
	require.NoError(t, err)
	assert.True(t, first.IsNew)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, int64(1), first.Clicks)

	second, err := store.TouchSession(ctx, "919876543210")
	require.NoError(t, err)
	assert.False(t, second.IsNew)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.Clicks)

	token, err := store.CreateAdminSession(ctx, "admin@kaapav.com", time.Hour)
	require.NoError(t, err)

	agent, ok, err := store.AdminSession(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin@kaapav.com", agent)

	_, ok, err = store.AdminSession(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
