package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/device"
)

const (
	iPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	desktopUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	site := config.Site{
		Mode:            config.ModeMDot,
		ServerName:      "example.com",
		PreferenceStore: config.StoreCookie,
		PreferenceParam: "site_preference",
		RedirectCode:    http.StatusFound,
	}
	log := slog.New(slog.DiscardHandler)
	sw, err := site.Switcher(nil, nil, log)
	require.NoError(t, err)

	return newRouter(routerDeps{
		log:        log,
		classifier: device.NewClassifier(),
		switcher:   sw,
		switchOpts: site.MiddlewareOptions(),
	})
}

func get(h http.Handler, target, ua string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("User-Agent", ua)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRouter(t *testing.T) {
	t.Parallel()
	h := testRouter(t)

	t.Run("phone is redirected to mobile host", func(t *testing.T) {
		t.Parallel()
		w := get(h, "http://example.com/catalog?page=2", iPhoneUA)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://m.example.com/catalog?page=2", w.Header().Get("Location"))
	})

	t.Run("phone on mobile host gets mobile page", func(t *testing.T) {
		t.Parallel()
		w := get(h, "http://m.example.com/", iPhoneUA)
		require.Equal(t, http.StatusOK, w.Code)
		body, _ := io.ReadAll(w.Body)
		assert.Contains(t, string(body), "<h1>mobile site</h1>")
		assert.Contains(t, string(body), "Device: mobile/ios")
	})

	t.Run("desktop stays on normal host", func(t *testing.T) {
		t.Parallel()
		w := get(h, "http://example.com/", desktopUA)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>normal site</h1>")
		assert.Contains(t, w.Body.String(), "Site preference: none")
	})

	t.Run("phone asking for normal site", func(t *testing.T) {
		t.Parallel()
		w := get(h, "http://example.com/?site_preference=normal", iPhoneUA)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<h1>normal site</h1>")
		assert.Contains(t, w.Body.String(), "Site preference: NORMAL")
		assert.Contains(t, w.Header().Get("Set-Cookie"), "SITE_PREFERENCE=NORMAL")
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		w := get(h, "http://example.com/health/live", iPhoneUA)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())

		w = get(h, "http://example.com/health/ready", iPhoneUA)
		assert.Equal(t, "ALIVE", w.Body.String())
	})
}
