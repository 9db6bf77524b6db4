package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

// Logging logs every request with its id, method, path and duration.
func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := ""
		reqIdCtx := r.Context().Value(RequestIDKey)
		if reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		start := time.Now()
		next.ServeHTTP(w, r)

		m.logs.Infow("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
			"request_id", requestId)
	})
}
