package sitepref_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmitrymomot/sitekit/pkg/sitepref"
)

func TestNewRedisStore(t *testing.T) {
	t.Parallel()
	_, err := sitepref.NewRedisStore(nil, nil)
	assert.ErrorIs(t, err, sitepref.ErrNoRedisClient)
}

// newTestRedis connects to REDIS_URL when set, otherwise starts a throwaway
// redis container.
func newTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx := context.Background()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		container, err := tcredis.Run(ctx,
			"redis:7-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30*time.Second),
			),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = container.Terminate(context.Background()) })

		url, err = container.ConnectionString(ctx)
		require.NoError(t, err)
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(pingCtx).Err())
	return client
}

func TestRedisStore_Integration(t *testing.T) {
	client := newTestRedis(t)
	prefix := "sitekit:test:" + t.Name() + ":"
	store, err := sitepref.NewRedisStore(client, nil, sitepref.WithKeyPrefix(prefix), sitepref.WithTTL(time.Minute))
	require.NoError(t, err)

	t.Run("unset without visitor cookie", func(t *testing.T) {
		_, ok := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
	})

	t.Run("invalid visitor id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: sitepref.DefaultVisitorCookieName, Value: "../../etc"})
		_, ok := store.Load(r)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, p := range []sitepref.Preference{sitepref.Normal, sitepref.Mobile, sitepref.Tablet} {
			w := httptest.NewRecorder()
			require.NoError(t, store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), p))

			got, ok := store.Load(withCookies(w, "/"))
			assert.True(t, ok)
			assert.Equal(t, p, got)
		}
	})

	t.Run("visitor id is reused", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, store.Save(w, httptest.NewRequest(http.MethodGet, "/", nil), sitepref.Mobile))
		first := w.Result().Cookies()[0].Value

		w2 := httptest.NewRecorder()
		require.NoError(t, store.Save(w2, withCookies(w, "/"), sitepref.Tablet))
		assert.Equal(t, first, w2.Result().Cookies()[0].Value)

		got, ok := store.Load(withCookies(w2, "/"))
		assert.True(t, ok)
		assert.Equal(t, sitepref.Tablet, got)
	})
}
