package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, h http.Handler) (*httpserver.Server, <-chan error) {
	t.Helper()
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(time.Second),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return srv, done
}

func TestRun_CancelContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, done := startServer(t, ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRun_ManualShutdown(t *testing.T) {
	t.Parallel()
	srv, done := startServer(t, context.Background(), nil)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRun_Twice(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, done := startServer(t, ctx, nil)
	assert.ErrorIs(t, srv.Run(ctx, nil), httpserver.ErrAlreadyRunning)

	cancel()
	<-done
}

func TestRun_BadAddr(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr("256.0.0.1:bad"))
	assert.ErrorIs(t, srv.Run(context.Background(), nil), httpserver.ErrStart)
}

func TestShutdown_BeforeRun(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	srv = httpserver.NewFromConfig(httpserver.Config{})
	assert.Equal(t, ":8080", srv.Addr())
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("down") }

	tests := []struct {
		name   string
		probes []func(context.Context) error
		code   int
		body   string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{"ready", []func(context.Context) error{ok, ok}, http.StatusOK, "READY"},
		{"not ready", []func(context.Context) error{ok, fail}, http.StatusServiceUnavailable, "NOT_READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.probes...)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
