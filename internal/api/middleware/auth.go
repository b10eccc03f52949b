package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя
// Заполняется вышестоящим шлюзом после проверки сессии
const userIDHeader = "X-User-ID"

// userIDContextKey ключ для хранения ID пользователя в контексте
type userIDContextKey struct{}

// Auth требует наличия X-User-ID и кладет его в контекст запроса
// Запрос без идентификации отклоняется до вызова бизнес-логики
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный middleware Auth
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok
}
