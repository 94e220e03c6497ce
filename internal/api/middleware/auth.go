package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

// HeaderAPIKey заголовок с ключом доступа
const HeaderAPIKey = "X-API-Key"

const (
	msgMissingAPIKey = "API key is required"
	msgInvalidAPIKey = "invalid API key"
)

// APIKeyAuth проверяет ключ из X-API-Key или Authorization: Bearer
func APIKeyAuth(apiKey string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := extractAPIKey(r)
			if provided == "" {
				logger.Warn("%s %s - Missing API key: request_id=%s", r.Method, r.URL.Path, RequestIDFromContext(r.Context()))
				handlers.RespondUnauthorized(w, msgMissingAPIKey)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
				logger.Warn("%s %s - Invalid API key: request_id=%s", r.Method, r.URL.Path, RequestIDFromContext(r.Context()))
				handlers.RespondUnauthorized(w, msgInvalidAPIKey)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractAPIKey(r *http.Request) string {
	if key := strings.TrimSpace(r.Header.Get(HeaderAPIKey)); key != "" {
		return key
	}

	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}
