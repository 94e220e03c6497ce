package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

// Recover перехватывает панику обработчика и отвечает JSON 500.
// Идентификатор запроса клиент видит в X-Request-ID
func Recover(logger Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http использует эту панику для обрыва ответа
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("%s %s - Unhandled panic: request_id=%s, error=%v\n%s",
					r.Method, r.URL.Path, RequestIDFromContext(r.Context()), rec, debug.Stack())
				handlers.RespondInternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
