package siteswitch_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/siteswitch"
	"github.com/dmitrymomot/sitekit/pkg/siteurl"
)

func TestMDot(t *testing.T) {
	t.Parallel()
	sw, err := siteswitch.MDot(" App.com ")
	require.NoError(t, err)

	normal, ok := sw.Factory(siteurl.SiteNormal).(*siteurl.HostFactory)
	require.True(t, ok)
	assert.Equal(t, "app.com", normal.ServerName())

	mobile, ok := sw.Factory(siteurl.SiteMobile).(*siteurl.HostFactory)
	require.True(t, ok)
	assert.Equal(t, "m.app.com", mobile.ServerName())
	assert.Nil(t, sw.Factory(siteurl.SiteTablet))

	_, err = siteswitch.MDot("")
	assert.ErrorIs(t, err, siteswitch.ErrInvalidServer)
}

func TestDotMobi(t *testing.T) {
	t.Parallel()
	sw, err := siteswitch.DotMobi("shop.example.com")
	require.NoError(t, err)

	mobile, ok := sw.Factory(siteurl.SiteMobile).(*siteurl.HostFactory)
	require.True(t, ok)
	assert.Equal(t, "shop.example.mobi", mobile.ServerName())

	dec, err := sw.Decide(httptest.NewRecorder(), requestWithDevice("https://shop.example.com/x", device.Mobile))
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.mobi/x", dec.URL)

	_, err = siteswitch.DotMobi("localhost")
	assert.ErrorIs(t, err, siteswitch.ErrInvalidServer)
}

func TestStandard(t *testing.T) {
	t.Parallel()

	_, err := siteswitch.Standard("app.com", "", "", "")
	assert.ErrorIs(t, err, siteswitch.ErrInvalidServer)

	sw, err := siteswitch.Standard("app.com", "mobile.app.com", "tablet.app.com", "")
	require.NoError(t, err)
	require.NotNil(t, sw.Factory(siteurl.SiteTablet))

	w := httptest.NewRecorder()
	dec, err := sw.Decide(w, requestWithDevice("http://app.com/?site_preference=tablet", device.Normal))
	require.NoError(t, err)
	assert.Equal(t, "http://tablet.app.com/?site_preference=tablet", dec.URL)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Domain)
}

func TestURLPath(t *testing.T) {
	t.Parallel()

	sw, err := siteswitch.URLPath("m", "", "")
	require.NoError(t, err)
	assert.Nil(t, sw.Factory(siteurl.SiteTablet))

	dec, err := sw.Decide(httptest.NewRecorder(), requestWithDevice("http://app.com/products", device.Mobile))
	require.NoError(t, err)
	assert.Equal(t, "http://app.com/m/products", dec.URL)

	dec, err = sw.Decide(httptest.NewRecorder(), requestWithDevice("http://app.com/m/products?site_preference=normal", device.Mobile))
	require.NoError(t, err)
	assert.Equal(t, "http://app.com/products?site_preference=normal", dec.URL)

	sw, err = siteswitch.URLPath("mobile", "tablet", "/shop/")
	require.NoError(t, err)
	dec, err = sw.Decide(httptest.NewRecorder(), requestWithDevice("http://app.com/shop/cart", device.Tablet))
	require.NoError(t, err)
	assert.Equal(t, "http://app.com/shop/tablet/cart", dec.URL)

	_, err = siteswitch.URLPath("", "", "")
	assert.ErrorIs(t, err, siteurl.ErrEmptyPath)
}
