package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sitekit/pkg/device"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/siteswitch"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

type routerDeps struct {
	log        *slog.Logger
	classifier *device.Classifier
	switcher   *siteswitch.Switcher
	switchOpts []siteswitch.MiddlewareOption
	probes     []func(context.Context) error
}

func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(deps.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(deps.log, deps.probes...))

	renderer := view.NewRenderer(
		view.NewAdapter(view.WithMobilePrefix("mobile/"), view.WithTabletPrefix("tablet/")),
		view.WithView("home", homePage("normal")),
		view.WithView("mobile/home", homePage("mobile")),
	)

	r.Group(func(r chi.Router) {
		r.Use(device.Middleware(deps.classifier))
		r.Use(siteswitch.Middleware(deps.switcher, deps.switchOpts...))

		r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
			if err := renderer.Render(w, r, "home"); err != nil {
				deps.log.ErrorContext(r.Context(), "failed to render page",
					logger.Component("view"),
					logger.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	})

	return r
}
