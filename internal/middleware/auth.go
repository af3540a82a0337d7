package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя auth-куки с JWT.
const CookieName = "auth_token"

const tokenTTL = 24 * time.Hour

type contextKey int

const userIDKey contextKey = iota

// claims — полезная нагрузка JWT: только id пользователя.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// BuildJWTString создаёт подписанный токен для пользователя.
func BuildJWTString(userID int64, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

// SetLoginCookie подписывает JWT и ставит его в auth-куку.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	tokenString, err := BuildJWTString(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(tokenTTL.Seconds()),
	})
	return nil
}

// ClearLoginCookie сбрасывает auth-куку (logout).
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// WithAuth извлекает JWT из auth-куки или заголовка Authorization
// (Bearer) и кладёт user_id в контекст запроса. Отсутствие или
// невалидность токена — не ошибка: запрос идёт дальше анонимным,
// решение о 401 принимают хендлеры.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := ""
			if c, err := r.Cookie(CookieName); err == nil {
				tokenString = c.Value
			}
			if tokenString == "" {
				if ah := r.Header.Get("Authorization"); strings.HasPrefix(ah, "Bearer ") {
					tokenString = strings.TrimPrefix(ah, "Bearer ")
				}
			}
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			cl := &claims{}
			token, err := jwt.ParseWithClaims(tokenString, cl, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, cl.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id аутентифицированного пользователя.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
