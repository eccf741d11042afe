package sitepref_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/sitepref"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, store sitepref.Store, target string) (sitepref.Preference, bool) {
		t.Helper()
		res, err := sitepref.NewResolver(store)
		require.NoError(t, err)

		var (
			got sitepref.Preference
			ok  bool
		)
		h := sitepref.Middleware(res)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok = sitepref.FromContext(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
		return got, ok
	}

	t.Run("stores explicit preference", func(t *testing.T) {
		t.Parallel()
		p, ok := serve(t, &recordingStore{}, "/?site_preference=mobile")
		assert.True(t, ok)
		assert.Equal(t, sitepref.Mobile, p)
	})

	t.Run("no preference", func(t *testing.T) {
		t.Parallel()
		_, ok := serve(t, &recordingStore{}, "/")
		assert.False(t, ok)
	})

	t.Run("nil resolver panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, sitepref.ErrNilResolver, func() { sitepref.Middleware(nil) })
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := sitepref.FromContext(context.Background())
	assert.False(t, ok)

	p, ok := sitepref.FromContext(sitepref.WithPreference(context.Background(), sitepref.Normal))
	assert.True(t, ok)
	assert.Equal(t, sitepref.Normal, p)

	_, ok = sitepref.FromContext(sitepref.WithPreference(context.Background(), ""))
	assert.False(t, ok)
}
