package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

func TestAdapter_Adjust(t *testing.T) {
	t.Parallel()

	a := view.NewAdapter(
		view.WithNormalPrefix("normal/"),
		view.WithMobilePrefix("mobile/"),
		view.WithMobileSuffix(".m"),
		view.WithTabletPrefix("tablet/"),
	)

	tests := []struct {
		name     string
		view     string
		class    device.Class
		pref     sitepref.Preference
		hasPref  bool
		expected string
	}{
		{"normal device", "home", device.Normal, "", false, "normal/home"},
		{"mobile device", "home", device.Mobile, "", false, "mobile/home.m"},
		{"tablet device", "home", device.Tablet, "", false, "tablet/home"},
		{"preference beats device", "home", device.Mobile, sitepref.Normal, true, "normal/home"},
		{"tablet preference on phone", "home", device.Mobile, sitepref.Tablet, true, "tablet/home"},
		{"mobile preference on desktop", "home", device.Normal, sitepref.Mobile, true, "mobile/home.m"},
		{"invalid preference ignored", "home", device.Tablet, sitepref.Preference("x"), true, "tablet/home"},
		{"redirect passes through", "redirect:/home", device.Mobile, "", false, "redirect:/home"},
		{"forward passes through", "forward:/home", device.Tablet, sitepref.Mobile, true, "forward:/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, a.Adjust(tt.view, tt.class, tt.pref, tt.hasPref))
		})
	}
}

func TestAdapter_TrailingSlash(t *testing.T) {
	t.Parallel()
	a := view.NewAdapter(view.WithTabletSuffix("/"))
	assert.Equal(t, "users/", a.Adjust("users/", device.Tablet, "", false))
	assert.Equal(t, "users/", a.Adjust("users", device.Tablet, "", false))
}

func TestAdapter_ZeroValue(t *testing.T) {
	t.Parallel()
	var a view.Adapter
	assert.Equal(t, "home", a.Adjust("home", device.Mobile, sitepref.Tablet, true))
}

func TestAdapter_AdjustContext(t *testing.T) {
	t.Parallel()
	a := view.NewAdapter(view.WithMobilePrefix("m/"), view.WithTabletPrefix("t/"))

	assert.Equal(t, "home", a.AdjustContext(context.Background(), "home"))

	ctx := device.WithDevice(context.Background(), device.Device{Class: device.Tablet})
	assert.Equal(t, "t/home", a.AdjustContext(ctx, "home"))

	ctx = sitepref.WithPreference(ctx, sitepref.Mobile)
	assert.Equal(t, "m/home", a.AdjustContext(ctx, "home"))
}
