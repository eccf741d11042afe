package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmitrymomot/sitekit/pkg/redis"
)

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      redis.Config
		expected error
	}{
		{
			name:     "empty url",
			cfg:      redis.Config{},
			expected: redis.ErrEmptyConnectionURL,
		},
		{
			name:     "invalid url",
			cfg:      redis.Config{ConnectionURL: "http://localhost"},
			expected: redis.ErrFailedToParseRedisConnString,
		},
		{
			name: "unreachable",
			cfg: redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1/0",
				RetryAttempts:  2,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: 2 * time.Second,
			},
			expected: redis.ErrRedisNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Connect(context.Background(), tt.cfg)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, client)
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()
	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379"}.Enabled())
}

func TestConnect_Healthcheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	url := os.Getenv("REDIS_URL")
	if url == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)

		container, err := tcredis.Run(context.Background(),
			"redis:7-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("Ready to accept connections").
					WithStartupTimeout(30*time.Second),
			),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = container.Terminate(context.Background()) })

		url, err = container.ConnectionString(context.Background())
		require.NoError(t, err)
	}

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  3,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, redis.Healthcheck(client)(context.Background()))
}
