package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/sitepref"
)

// DeviceExtractor adds the device stored by device.Middleware to records.
func DeviceExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		d, ok := device.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return Device(d), true
	}
}

// PreferenceExtractor adds the resolved site preference to records.
func PreferenceExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		p, ok := sitepref.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return Preference(p.String()), true
	}
}
