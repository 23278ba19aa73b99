package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	msgMissingToken = "authorization required"
	msgInvalidToken = "session expired, please log in again"
	bearerPrefix    = "Bearer "
)

type contextKey string

const employeeIDKey contextKey = "employeeID"

// TokenParser проверяет токен сессии и возвращает табельный номер
type TokenParser interface {
	ParseToken(ctx context.Context, token string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует заголовок Authorization: Bearer <token>
// Табельный номер сотрудника кладется в контекст запроса
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			employeeID, err := parser.ParseToken(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmployeeID(r.Context(), employeeID)))
		})
	}
}

// WithEmployeeID кладет табельный номер в контекст
func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeIDKey, employeeID)
}

// GetEmployeeID достает табельный номер, положенный Auth
func GetEmployeeID(ctx context.Context) (string, bool) {
	employeeID, ok := ctx.Value(employeeIDKey).(string)
	return employeeID, ok && employeeID != ""
}
