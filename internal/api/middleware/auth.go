package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
)

// UserIDHeader заголовок с ID действующего пользователя
const UserIDHeader = "X-Sharer-User-Id"

const msgInvalidUserHeader = "отсутствует или некорректен заголовок " + UserIDHeader

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает ID пользователя из заголовка X-Sharer-User-Id.
// Отсутствующий или некорректный заголовок - 400.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := ParseUserID(r.Header.Get(UserIDHeader))
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidUserHeader)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// ParseUserID разбирает значение заголовка: положительное целое
func ParseUserID(raw string) (int64, error) {
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if userID <= 0 {
		return 0, strconv.ErrRange
	}
	return userID, nil
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID получает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
