package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Logging пишет строку лога на каждый запрос: метод, путь, статус, длительность и ID запроса
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			requestID := RequestIDFromContext(r.Context())

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rw.statusCode, duration, requestID)
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rw.statusCode, duration, requestID)
			default:
				logger.Info("%s %s -> %d (%s) request_id=%s", r.Method, r.URL.Path, rw.statusCode, duration, requestID)
			}
		})
	}
}
