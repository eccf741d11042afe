package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per config type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache   = &cache{values: make(map[reflect.Type]any)}
	defaultDotenv sync.Once
)

// Load parses environment variables into v using its env struct tags. The
// first call loads .env from the working directory if present. Each config
// type is parsed once; later calls return the cached copy.
//
//	var cfg config.App
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultDotenv.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse parses v from the environment without caching.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads the given dotenv files, overriding variables already set.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return fmt.Errorf("config: load env files: %w", err)
	}
	return nil
}

// ResetCache drops every cached config.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	clear(globalCache.values)
}
