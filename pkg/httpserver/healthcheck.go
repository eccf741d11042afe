package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes. Without probes it
// always answers 200 "ALIVE". With probes it runs each against the request
// context and answers 200 "READY" or 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, probes ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(probes) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, probe := range probes {
			if err := probe(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("httpserver"),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
