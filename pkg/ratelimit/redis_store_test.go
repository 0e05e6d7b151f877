package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kbooks/pkg/ratelimit"
)

// fakeRedis implements the commands RedisStore sends. Keys without an entry
// in ttls have no expiry, like a key written by a plain INCR.
type fakeRedis struct {
	redis.Cmdable

	mu       sync.Mutex
	counts   map[string]int64
	ttls     map[string]time.Duration
	expires  []string
	execErr  error
	deleted  []string
	pipeline int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) TxPipeline() redis.Pipeliner {
	f.mu.Lock()
	f.pipeline++
	f.mu.Unlock()
	return &fakePipeline{r: f}
}

func (f *fakeRedis) PExpire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[key] = d
	f.expires = append(f.expires, key)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.counts[k]; ok {
			n++
		}
		delete(f.counts, k)
		delete(f.ttls, k)
		f.deleted = append(f.deleted, k)
	}
	return redis.NewIntResult(n, nil)
}

type fakePipeline struct {
	redis.Pipeliner

	r    *fakeRedis
	incr []*redis.IntCmd
	pttl []*redis.DurationCmd
	keys []string
}

func (p *fakePipeline) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	p.incr = append(p.incr, cmd)
	p.keys = append(p.keys, key)
	return cmd
}

func (p *fakePipeline) PTTL(ctx context.Context, key string) *redis.DurationCmd {
	cmd := redis.NewDurationCmd(ctx, time.Millisecond, "pttl", key)
	p.pttl = append(p.pttl, cmd)
	return cmd
}

func (p *fakePipeline) Exec(context.Context) ([]redis.Cmder, error) {
	p.r.mu.Lock()
	defer p.r.mu.Unlock()
	if p.r.execErr != nil {
		return nil, p.r.execErr
	}
	for i, key := range p.keys {
		p.r.counts[key]++
		p.incr[i].SetVal(p.r.counts[key])
		ttl, ok := p.r.ttls[key]
		if !ok {
			ttl = -1
		}
		p.pttl[i].SetVal(ttl)
	}
	return nil, nil
}

func TestRedisStore_Increment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first hit sets the window", func(t *testing.T) {
		t.Parallel()
		fr := newFakeRedis()
		store := ratelimit.NewRedisStore(fr, "rl:")

		count, ttl, err := store.Increment(ctx, "account:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, time.Minute, ttl)
		assert.Equal(t, []string{"rl:account:1.2.3.4"}, fr.expires)
		assert.Equal(t, 1, fr.pipeline)
	})

	t.Run("later hits keep the remaining ttl", func(t *testing.T) {
		t.Parallel()
		fr := newFakeRedis()
		store := ratelimit.NewRedisStore(fr, "rl:")

		_, _, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		fr.mu.Lock()
		fr.ttls["rl:k"] = 20 * time.Second
		fr.mu.Unlock()

		count, ttl, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Equal(t, 20*time.Second, ttl)
		assert.Len(t, fr.expires, 1)
	})

	t.Run("repairs a key without expiry", func(t *testing.T) {
		t.Parallel()
		fr := newFakeRedis()
		fr.counts["rl:stuck"] = 5
		store := ratelimit.NewRedisStore(fr, "rl:")

		count, ttl, err := store.Increment(ctx, "stuck", 30*time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)
		assert.Equal(t, 30*time.Second, ttl)
		assert.Equal(t, []string{"rl:stuck"}, fr.expires)
		assert.Equal(t, 30*time.Second, fr.ttls["rl:stuck"])
	})

	t.Run("pipeline failure", func(t *testing.T) {
		t.Parallel()
		fr := newFakeRedis()
		fr.execErr = errors.New("connection reset")
		store := ratelimit.NewRedisStore(fr, "rl:")

		_, _, err := store.Increment(ctx, "k", time.Minute)
		require.Error(t, err)
		assert.Empty(t, fr.expires)
	})
}

func TestRedisStore_Delete(t *testing.T) {
	t.Parallel()

	fr := newFakeRedis()
	store := ratelimit.NewRedisStore(fr, "rl:")
	_, _, err := store.Increment(context.Background(), "k", time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Equal(t, []string{"rl:k"}, fr.deleted)
	assert.NotContains(t, fr.counts, "rl:k")
}

func TestFixedWindow_RedisStore(t *testing.T) {
	t.Parallel()

	fr := newFakeRedis()
	limiter, err := ratelimit.NewFixedWindow(ratelimit.NewRedisStore(fr, "rl:"), 2, time.Minute)
	require.NoError(t, err)

	for i := range 2 {
		res, err := limiter.Allow(context.Background(), "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
	}

	res, err := limiter.Allow(context.Background(), "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	fr.execErr = errors.New("down")
	_, err = limiter.Allow(context.Background(), "ip")
	assert.ErrorIs(t, err, ratelimit.ErrStoreFailure)
}
