package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeaders базовые защитные заголовки для JSON API
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := w.Header()
		headers.Set("X-Content-Type-Options", "nosniff")
		headers.Set("X-Frame-Options", "SAMEORIGIN")
		headers.Set("Referrer-Policy", "same-origin")
		headers.Set("X-XSS-Protection", "0")
		headers.Set("Content-Security-Policy", "default-src 'self'")
		headers.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")

		next.ServeHTTP(w, r)
	})
}

// HTTPSRedirect перенаправляет на https запросы, которые прокси получил по http.
// Выключенный middleware пропускает все запросы
func HTTPSRedirect(enabled bool) Middleware {
	if !enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
				http.Redirect(w, r, "https://"+r.Host+r.URL.RequestURI(), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
