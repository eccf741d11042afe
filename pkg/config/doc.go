// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags. Load
// reads a .env file from the working directory on first use (when present)
// and caches one parsed value per type; Parse skips the cache.
//
// App aggregates the settings of the sitekit server. Site turns the SITE_*
// and DEVICE_* variables into a device classifier and a site switcher:
//
//	var app config.App
//	config.MustLoad(&app)
//
//	classifier, err := app.Site.Classifier()
//	sw, err := app.Site.Switcher(cookies, redisClient, log)
//
// SITE_MODE selects the layout: mdot (m.example.com), dotmobi (example.mobi),
// standard (explicit mobile and tablet hosts) or path (/m/ and /t/ prefixes).
// SITE_PREFERENCE_STORE selects where explicit preferences are kept: cookie
// (default) or redis.
package config
