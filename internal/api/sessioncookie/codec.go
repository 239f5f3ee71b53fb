// Package sessioncookie encodes the session token into the sid cookie.
// Signing is delegated to gorilla/securecookie; the token itself stays
// opaque and all session state lives server-side.
package sessioncookie

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// Name is the cookie carrying the signed session token.
const Name = "sid"

type Codec struct {
	sc  *securecookie.SecureCookie
	ttl time.Duration
}

// New builds a Codec signing with the given secret. TTL bounds both the
// cookie Max-Age and the signature validity window.
func New(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	sc := securecookie.New([]byte(secret), nil)
	sc.MaxAge(int(ttl.Seconds()))
	return &Codec{sc: sc, ttl: ttl}
}

// Issue returns an http.Cookie carrying the signed token.
func (c *Codec) Issue(token string) (*http.Cookie, error) {
	value, err := c.sc.Encode(Name, token)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Token extracts and verifies the session token from a request. It returns
// an empty string when the cookie is absent or its signature does not verify.
func (c *Codec) Token(r *http.Request) string {
	cookie, err := r.Cookie(Name)
	if err != nil {
		return ""
	}
	var token string
	if err := c.sc.Decode(Name, cookie.Value, &token); err != nil {
		return ""
	}
	return token
}

// Clear returns an expired cookie that removes sid from the browser.
func Clear() *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
