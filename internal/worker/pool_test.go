package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/worker"
)

func TestPool_SameKeyRunsInOrder(t *testing.T) {
	pool := worker.NewPool(4, 100, zap.NewNop())
	pool.Start(context.Background())

	var mu sync.Mutex
	var got []int
	for i := 1; i <= 5; i++ {
		n := i
		ok := pool.TryDispatch(worker.Job{
			Key: "919876543210",
			Handler: func(ctx context.Context) error {
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				got = append(got, n)
				mu.Unlock()
				return nil
			},
		})
		require.True(t, ok)
	}

	pool.Stop(context.Background())

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	stats := pool.Stats()
	assert.Equal(t, int64(5), stats.Dispatched)
	assert.Equal(t, int64(5), stats.Processed)
}

func TestPool_DifferentKeysRunConcurrently(t *testing.T) {
	pool := worker.NewPool(8, 10, zap.NewNop())
	pool.Start(context.Background())
	defer pool.Stop(context.Background())

	// Two blocking jobs on different workers must both start.
	started := make(chan string, 2)
	release := make(chan struct{})
	keys := distinctShardKeys(t, 8)
	for _, k := range keys {
		key := k
		pool.TryDispatch(worker.Job{Key: key, Handler: func(ctx context.Context) error {
			started <- key
			<-release
			return nil
		}})
	}

	for range keys {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("jobs for different senders did not run in parallel")
		}
	}
	close(release)
}

func TestPool_DropsWhenFullOrStopped(t *testing.T) {
	pool := worker.NewPool(1, 1, zap.NewNop())

	noop := func(ctx context.Context) error { return nil }
	assert.True(t, pool.TryDispatch(worker.Job{Key: "a", Handler: noop}))
	assert.False(t, pool.TryDispatch(worker.Job{Key: "a", Handler: noop}), "queue holds one job and nothing is draining it")

	pool.Start(context.Background())
	pool.Stop(context.Background())
	assert.False(t, pool.TryDispatch(worker.Job{Key: "a", Handler: noop}))

	stats := pool.Stats()
	assert.Equal(t, int64(2), stats.Dropped)
	assert.Equal(t, int64(1), stats.Processed)
}

func TestPool_CountsFailuresAndPanics(t *testing.T) {
	pool := worker.NewPool(2, 10, zap.NewNop())
	pool.Start(context.Background())

	pool.TryDispatch(worker.Job{Key: "a", Handler: func(ctx context.Context) error { return errors.New("boom") }})
	pool.TryDispatch(worker.Job{Key: "b", Handler: func(ctx context.Context) error { panic("bad payload") }})
	pool.Stop(context.Background())

	stats := pool.Stats()
	assert.Equal(t, int64(2), stats.Processed)
	assert.Equal(t, int64(2), stats.Errors)
}

// distinctShardKeys finds two keys that hash to different workers.
func distinctShardKeys(t *testing.T, workers int) []string {
	t.Helper()
	scratch := worker.NewPool(workers, 1, zap.NewNop())
	first := "9190000000"
	scratch.TryDispatch(worker.Job{Key: first, Handler: func(ctx context.Context) error { return nil }})
	for i := 1; i < 100; i++ {
		key := first + string(rune('0'+i%10)) + string(rune('a'+i/10))
		// A full shard rejects the second job, a free one accepts it.
		if scratch.TryDispatch(worker.Job{Key: key, Handler: func(ctx context.Context) error { return nil }}) {
			return []string{first, key}
		}
	}
	t.Fatal("no second shard found")
	return nil
}
