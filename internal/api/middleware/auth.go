package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-DentalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DentalBooking/internal/service/identity"
)

const (
	msgAuthHeaderRequired = "authorization header required"
	msgAuthHeaderFormat   = "invalid authorization header format"
	msgTokenExpired       = "token expired"
	msgTokenInvalid       = "invalid or malformed token"
	msgAdminOnly          = "admin access required"
)

// Authenticator проверяет access токен
type Authenticator interface {
	Authenticate(token string) (*identity.Claims, error)
}

// AdminChecker проверяет email по списку администраторов
type AdminChecker interface {
	IsAdmin(email string) bool
}

// Auth требует заголовок "Authorization: Bearer <token>" и кладет пользователя в контекст
func Auth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgAuthHeaderRequired)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "Bearer") || strings.TrimSpace(parts[1]) == "" {
				handlers.RespondUnauthorized(w, msgAuthHeaderFormat)
				return
			}

			claims, err := auth.Authenticate(strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, identity.ErrTokenExpired) {
					handlers.RespondUnauthorized(w, msgTokenExpired)
					return
				}
				handlers.RespondUnauthorized(w, msgTokenInvalid)
				return
			}

			ctx := WithUser(r.Context(), User{ID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только пользователей из списка администраторов. Ставится после Auth
func AdminOnly(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "")
				return
			}
			if !checker.IsAdmin(user.Email) {
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
