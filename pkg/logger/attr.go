package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". All nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Device records the device classification under "device".
func Device(d fmt.Stringer) slog.Attr {
	if d == nil {
		return slog.Attr{}
	}
	return slog.String("device", d.String())
}

// Preference records a site preference under "site_preference".
// An empty preference yields an empty Attr.
func Preference(p string) slog.Attr {
	if p == "" {
		return slog.Attr{}
	}
	return slog.String("site_preference", p)
}

// Site records a site variant under "site".
func Site(s fmt.Stringer) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	return slog.String("site", s.String())
}

// RedirectURL records a redirect target under "redirect_url".
func RedirectURL(u string) slog.Attr {
	return slog.String("redirect_url", u)
}

// RequestID records the request identifier under "request_id".
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
