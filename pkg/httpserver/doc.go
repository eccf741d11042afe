// Package httpserver runs an http.Handler with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, and provides liveness and readiness
// handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
