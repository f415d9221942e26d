// Package middleware holds the HTTP middleware shared by every route:
// request ids, access logging, panic recovery, CORS, rate limiting and
// bearer authentication.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is the outermost.
// Nil entries are skipped, which lets callers include optional layers inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}
