package device

import "context"

type contextKey struct{}

// WithDevice stores the classified device in the context.
func WithDevice(ctx context.Context, d Device) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the device stored by the middleware.
func FromContext(ctx context.Context) (Device, bool) {
	if ctx == nil {
		return Device{}, false
	}
	d, ok := ctx.Value(contextKey{}).(Device)
	return d, ok
}

// MustFromContext returns the device stored in the context.
// It panics if the device middleware did not run for this request.
func MustFromContext(ctx context.Context) Device {
	d, ok := FromContext(ctx)
	if !ok {
		panic(ErrNoDevice)
	}
	return d
}
