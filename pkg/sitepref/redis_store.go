package sitepref

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sitekit/pkg/cookie"
)

const (
	// DefaultVisitorCookieName is the cookie carrying the anonymous visitor id.
	DefaultVisitorCookieName = "sitekit.sitepref.VISITOR"

	defaultRedisPrefix = "sitekit:sitepref:"
	defaultRedisTTL    = 365 * 24 * time.Hour
)

// RedisStore keeps preferences server-side in Redis. The client only holds
// an opaque visitor id (a random UUID) in a cookie.
type RedisStore struct {
	client     redis.UniversalClient
	cookies    *cookie.Manager
	cookieName string
	cookieOpts []cookie.Option
	prefix     string
	ttl        time.Duration
	logger     *slog.Logger
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithVisitorCookieName overrides DefaultVisitorCookieName.
func WithVisitorCookieName(name string) RedisStoreOption {
	return func(s *RedisStore) {
		if name != "" {
			s.cookieName = name
		}
	}
}

// WithVisitorCookieDomain scopes the visitor cookie to a domain.
func WithVisitorCookieDomain(domain string) RedisStoreOption {
	return func(s *RedisStore) {
		if domain != "" {
			s.cookieOpts = append(s.cookieOpts, cookie.WithDomain(domain))
		}
	}
}

// WithKeyPrefix sets the Redis key prefix. Defaults to "sitekit:sitepref:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTTL sets how long a preference is remembered. Defaults to one year.
func WithTTL(ttl time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithStoreLogger sets the logger used to report Redis read failures.
func WithStoreLogger(l *slog.Logger) RedisStoreOption {
	return func(s *RedisStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewRedisStore creates a Redis backed store. A nil cookie manager uses a
// plain manager with default attributes.
func NewRedisStore(client redis.UniversalClient, cookies *cookie.Manager, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNoRedisClient
	}
	if cookies == nil {
		var err error
		if cookies, err = cookie.New(nil); err != nil {
			return nil, err
		}
	}

	s := &RedisStore{
		client:     client,
		cookies:    cookies,
		cookieName: DefaultVisitorCookieName,
		prefix:     defaultRedisPrefix,
		ttl:        defaultRedisTTL,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load returns the preference stored for the visitor. Requests without a
// valid visitor id, missing keys and Redis failures all report unset.
func (s *RedisStore) Load(r *http.Request) (Preference, bool) {
	visitor, ok := s.visitorID(r)
	if !ok {
		return "", false
	}

	value, err := s.client.Get(r.Context(), s.key(visitor)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(r.Context(), "failed to load site preference",
				slog.String("component", "sitepref.redis"),
				slog.Any("error", err),
			)
		}
		return "", false
	}
	return Parse(value)
}

// Save stores p for the visitor, issuing a new visitor id when needed.
func (s *RedisStore) Save(w http.ResponseWriter, r *http.Request, p Preference) error {
	if !p.Valid() {
		return ErrInvalidPreference
	}

	visitor, ok := s.visitorID(r)
	if !ok {
		visitor = uuid.NewString()
	}

	if err := s.client.Set(r.Context(), s.key(visitor), p.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	// Refresh the cookie so it outlives the stored value.
	opts := append([]cookie.Option{cookie.WithTTL(s.ttl)}, s.cookieOpts...)
	s.cookies.Set(w, s.cookieName, visitor, opts...)
	return nil
}

func (s *RedisStore) visitorID(r *http.Request) (string, bool) {
	v, err := s.cookies.Get(r, s.cookieName)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (s *RedisStore) key(visitor string) string {
	return s.prefix + visitor
}
