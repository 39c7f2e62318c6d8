package middleware

import "context"

type contextKey int

const (
	userKey contextKey = iota
	requestIDKey
)

// User аутентифицированный пользователь запроса
type User struct {
	ID    string
	Email string
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext достает пользователя, положенного Auth
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

// RequestIDFromContext возвращает ID запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
