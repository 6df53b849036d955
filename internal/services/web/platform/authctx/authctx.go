// Package authctx provides dashboard authentication seams.
package authctx

import (
	"context"
	"net/http"

	"github.com/aislehq/aisle/internal/services/web/platform/sessioncookie"
)

// IsAuthenticated reports whether the current request should access protected routes.
type IsAuthenticated func(*http.Request) bool

// CookieAuth returns a cookie-presence auth strategy. It proves possession of
// a session cookie but not validity.
func CookieAuth() IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil {
			return false
		}
		_, ok := sessioncookie.Read(r)
		return ok
	}
}

// ValidatedSessionAuth authenticates requests only through validated session cookies.
func ValidatedSessionAuth(validate func(context.Context, string) bool) IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil || validate == nil {
			return false
		}
		token, ok := sessioncookie.Read(r)
		if !ok {
			return false
		}
		return validate(r.Context(), token)
	}
}
