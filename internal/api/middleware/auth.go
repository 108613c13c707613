package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

type contextKey string

const adminClaimsKey contextKey = "adminClaims"

// AdminClaims данные администратора из JWT токена
type AdminClaims struct {
	Subject string // Идентификатор администратора
	Role    string
}

// AdminAuth проверяет Bearer JWT (HS256) и кладет данные администратора в контекст
// Используется на админском поддереве роутера
func AdminAuth(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			admin := AdminClaims{}
			if sub, err := claims.GetSubject(); err == nil {
				admin.Subject = sub
			}
			if role, ok := claims["role"].(string); ok {
				admin.Role = role
			}

			if admin.Subject == "" {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFrom извлекает данные администратора из контекста запроса
func AdminFrom(ctx context.Context) (AdminClaims, bool) {
	admin, ok := ctx.Value(adminClaimsKey).(AdminClaims)
	return admin, ok
}
