// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on each Handle call.
//
// DeviceExtractor and PreferenceExtractor add the classification produced by
// device.Middleware and the preference resolved by sitepref to every log line
// written with a request context:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "sitekit"),
//	    logger.WithContextExtractors(
//	        logger.DeviceExtractor(),
//	        logger.PreferenceExtractor(),
//	    ),
//	)
//	log.InfoContext(r.Context(), "site switch", logger.Site(site), logger.RedirectURL(u))
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// without a nil check.
package logger
