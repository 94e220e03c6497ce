package middleware

import "net/http"

// Middleware обертка над http.Handler
type Middleware func(http.Handler) http.Handler

// Chain применяет middleware так, что Chain(h, a, b) == a(b(h))
func Chain(h http.Handler, m ...Middleware) http.Handler {
	for i := len(m) - 1; i >= 0; i-- {
		h = m[i](h)
	}
	return h
}
