package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"

	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUser   = "требуется аутентификация"
	msgInvalidToken  = "некорректный токен"
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidRole   = "некорректная роль пользователя"
	msgForbidden     = "доступ запрещен"
)

var (
	ErrMissingCredentials = errors.New("auth: missing credentials")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrInvalidUserID      = errors.New("auth: invalid user id")
	ErrInvalidRole        = errors.New("auth: invalid role")
)

// Claims содержимое access-токена
// sub - ID пользователя, role - user | admin | security
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth определяет пользователя запроса
// С секретом - по Bearer JWT (HS256), без секрета - по заголовкам gateway X-User-ID / X-User-Role
func Auth(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				userID int64
				role   domain.Role
				err    error
			)

			if jwtSecret != "" {
				userID, role, err = fromToken(r, jwtSecret)
			} else {
				userID, role, err = fromHeaders(r)
			}

			if err != nil {
				switch {
				case errors.Is(err, ErrMissingCredentials):
					handlers.RespondUnauthorized(w, msgMissingUser)
				case errors.Is(err, ErrInvalidUserID):
					handlers.RespondUnauthorized(w, msgInvalidUserID)
				case errors.Is(err, ErrInvalidRole):
					handlers.RespondUnauthorized(w, msgInvalidRole)
				default:
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей
// Должен стоять после Auth
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUser)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetRole возвращает роль пользователя из контекста
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}

// WithUser кладёт пользователя в контекст (для тестов handlers)
func WithUser(ctx context.Context, userID int64, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// NewToken выпускает access-токен, используется в тестах и утилитах
func NewToken(secret string, userID int64, role domain.Role, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = strconv.FormatInt(userID, 10)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: string(role), RegisteredClaims: claims})
	return token.SignedString([]byte(secret))
}

func fromToken(r *http.Request, secret string) (int64, domain.Role, error) {
	header := r.Header.Get("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return 0, "", ErrMissingCredentials
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, err := parseUserID(claims.Subject)
	if err != nil {
		return 0, "", err
	}

	role, err := parseRole(claims.Role)
	if err != nil {
		return 0, "", err
	}

	return userID, role, nil
}

func fromHeaders(r *http.Request) (int64, domain.Role, error) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		return 0, "", ErrMissingCredentials
	}

	userID, err := parseUserID(raw)
	if err != nil {
		return 0, "", err
	}

	role, err := parseRole(r.Header.Get(HeaderUserRole))
	if err != nil {
		return 0, "", err
	}

	return userID, role, nil
}

func parseUserID(s string) (int64, error) {
	userID, err := strconv.ParseInt(s, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}

// Пустая роль - обычный жилец
func parseRole(s string) (domain.Role, error) {
	switch role := domain.Role(strings.ToLower(strings.TrimSpace(s))); role {
	case "":
		return domain.RoleUser, nil
	case domain.RoleUser, domain.RoleAdmin, domain.RoleSecurity:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}
