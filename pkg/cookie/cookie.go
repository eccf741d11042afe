package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager reads and writes cookies with shared default attributes.
// Secrets are optional; without them only plain cookies are available.
// A Manager is immutable and safe for concurrent use.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. Empty secrets are dropped; the first remaining
// secret signs new values, all of them are accepted when verifying.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	return &Manager{
		secrets:  secrets,
		defaults: defaultOptions().apply(opts),
	}, nil
}

// CanSign reports whether the manager was configured with at least one secret.
func (m *Manager) CanSign() bool { return len(m.secrets) > 0 }

// Defaults returns the cookie attributes applied to every cookie.
func (m *Manager) Defaults() Options { return m.defaults }

// Set writes a plain cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	o := m.defaults.apply(opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

// Get returns the value of a plain cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie on the client.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	o := m.defaults.apply(opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	})
}

// SetSigned writes a cookie carrying an HMAC-SHA256 signature of its value.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	if !m.CanSign() {
		return ErrNoSecret
	}
	m.Set(w, name, m.sign(value), opts...)
	return nil
}

// GetSigned returns the value of a signed cookie after verifying its signature.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if !m.CanSign() {
		return "", ErrNoSecret
	}
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

func (m *Manager) sign(value string) string {
	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature(m.secrets[0], []byte(value))
}

func (m *Manager) verify(signed string) (string, error) {
	encodedValue, sig, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Every secret is tried so cookies signed before a key rotation stay valid.
	for _, secret := range m.secrets {
		if subtle.ConstantTimeCompare([]byte(sig), []byte(signature(secret, value))) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func signature(secret string, value []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(value)
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
