package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis overrides the handful of commands the cache issues; anything else
// panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	}
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	c := NewCache(fake, "supplydesk")

	key := c.GenerateKey("products", "all")
	assert.Equal(t, "supplydesk:products:all", key)

	v, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "", v, "miss returns empty string")

	require.NoError(t, c.Set(ctx, key, []byte(`[{"id":1}]`), time.Minute))
	assert.Equal(t, time.Minute, fake.ttls[key])

	v, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, c.Delete(ctx, key))
	v, _ = c.Get(ctx, key)
	assert.Equal(t, "", v)

	assert.NoError(t, c.Delete(ctx))
	assert.NoError(t, Ping(ctx, c))
}

func TestRedisCache_GetError(t *testing.T) {
	fake := newFakeRedis()
	fake.failGet = errors.New("connection reset")
	c := NewCache(fake, "supplydesk")

	_, err := c.Get(context.Background(), "k")
	assert.EqualError(t, err, "connection reset")
}

type closingRedis struct {
	*fakeRedis
	closed int
}

func (c *closingRedis) Close() error {
	c.closed++
	return nil
}

func TestClose(t *testing.T) {
	fake := &closingRedis{fakeRedis: newFakeRedis()}

	require.NoError(t, Close(NewCache(fake, "supplydesk")))
	assert.Equal(t, 1, fake.closed)

	assert.NoError(t, Close(NewCache(newFakeRedis(), "supplydesk")), "clients without Close are left alone")
}
