package middleware

import (
	"context"
	"net/http"

	"github.com/plenkanet/CleanNet-Backend/internal/api/handlers"
	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
	userNameKey  contextKey = "userName"
	userRoleKey  contextKey = "userRole"
)

// Заголовки, заполняемые identity-прокси перед сервисом.
// Сервис доверяет им безоговорочно: проверка подписи токена происходит выше.
const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
	headerUserRole  = "X-User-Role"
)

// Auth извлекает данные пользователя из заголовков запроса,
// кладет их в контекст и отклоняет запросы без идентификатора
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется авторизация")
			return
		}

		role := r.Header.Get(headerUserRole)
		if role == "" {
			role = domain.RoleCustomer
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, userIDKey, userID)
		ctx = context.WithValue(ctx, userEmailKey, r.Header.Get(headerUserEmail))
		ctx = context.WithValue(ctx, userNameKey, r.Header.Get(headerUserName))
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только администраторов. Вешается после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserRole(r.Context()) != domain.RoleAdmin {
			handlers.RespondForbidden(w, "требуются права администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

// GetUserEmail возвращает email пользователя из контекста
func GetUserEmail(ctx context.Context) string {
	v, _ := ctx.Value(userEmailKey).(string)
	return v
}

// GetUserName возвращает имя пользователя из контекста
func GetUserName(ctx context.Context) string {
	v, _ := ctx.Value(userNameKey).(string)
	return v
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) string {
	v, _ := ctx.Value(userRoleKey).(string)
	return v
}
