package redis

import "time"

// Config holds the Redis connection settings. An empty ConnectionURL means
// Redis is not used.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:""` // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool { return c.ConnectionURL != "" }
