package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Claims токена доступа: sub - id пользователя.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type userKey struct{}

// WithUser кладет аутентифицированного пользователя в контекст.
func WithUser(ctx context.Context, user entities.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext возвращает пользователя, установленный Auth.
func UserFromContext(ctx context.Context) (entities.User, bool) {
	user, ok := ctx.Value(userKey{}).(entities.User)
	return user, ok
}

var errInvalidToken = errors.New("invalid token")

// Auth проверяет Bearer токен (HS256) и кладет пользователя в контекст запроса.
func Auth(secret string) func(next http.Handler) http.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := parseToken(parser, key, token)
			if err != nil {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func parseToken(parser *jwt.Parser, key []byte, token string) (entities.User, error) {
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return entities.User{}, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return entities.User{}, errInvalidToken
	}
	return entities.User{ID: claims.Subject, Email: claims.Email}, nil
}

// IssueToken подписывает токен доступа для пользователя.
func IssueToken(secret string, user entities.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: user.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
