package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Auth rejects requests without a valid AUTH_TOKEN header.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := ""
		reqIdCtx := r.Context().Value(RequestIDKey)
		if reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		token := r.Header.Get("AUTH_TOKEN")
		if token == "" {
			http.Error(w, "AUTH_TOKEN header is required", http.StatusUnauthorized)
			m.logs.Errorw("missing AUTH_TOKEN header", "request_id", requestId)
			return
		}

		if _, err := m.validator.Validate(token); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			m.logs.Errorw("token validation failed", "error", err, "request_id", requestId)
			return
		}

		next.ServeHTTP(w, r)
	})
}
