// Package cookie is the cookie transport used by the site preference stores.
//
// A Manager carries default attributes (path, domain, max-age, secure,
// http-only, same-site) applied to every cookie it writes, and optionally a
// list of secrets for HMAC-SHA256 signed cookies. Multiple secrets allow key
// rotation: the first signs, all of them verify.
//
// # Usage
//
//	man, err := cookie.New(nil, cookie.WithDomain(".example.com"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	man.Set(w, "name", "value")
//	v, err := man.Get(r, "name")
//
// Signed cookies:
//
//	man, _ := cookie.New([]string{os.Getenv("COOKIE_SECRET")}) // >= 32 bytes
//	_ = man.SetSigned(w, "name", "value")
//	v, err := man.GetSigned(r, "name") // ErrInvalidSignature when tampered
//
// # Configuration
//
// Config can be populated from environment variables with
// github.com/caarlos0/env and turned into a Manager with NewFromConfig.
//
// # Error Handling
//
// Sentinel errors (ErrCookieNotFound, ErrInvalidSignature, ErrInvalidFormat,
// ErrNoSecret, ErrSecretTooShort) are comparable with errors.Is.
package cookie
