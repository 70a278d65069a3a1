package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cliver/internal/entities"
	"cliver/pkg/logger"
)

type actorKey struct{}

// tokenClaims - access-токен auth-провайдера: subject это id
// пользователя, роль лежит в user_metadata.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email        string `json:"email,omitempty"`
	UserMetadata struct {
		Role string `json:"role,omitempty"`
	} `json:"user_metadata,omitempty"`
}

// Middleware разрешает идентичность один раз на запрос и кладет
// entities.Actor в контекст. Запросы без валидного Bearer-токена
// отклоняются до хендлера.
func Middleware(log handlerLogger, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			actor, err := parseToken(token, jwtSecret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token rejected")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только актора с заданной ролью.
func RequireRole(role entities.UserRoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if actor.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"insufficient role"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}

// WithActor используется в хендлерных тестах для подстановки идентичности.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func parseToken(token, secret string) (entities.Actor, error) {
	if strings.TrimSpace(secret) == "" {
		return entities.Actor{}, errors.New("jwt secret not configured")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &tokenClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return entities.Actor{}, err
	}
	if !parsed.Valid {
		return entities.Actor{}, errors.New("invalid token")
	}

	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return entities.Actor{}, errors.New("subject claim is not a valid id")
	}

	role := entities.UserRoleType(claims.UserMetadata.Role)
	if !role.Valid() {
		return entities.Actor{}, errors.New("unknown role claim")
	}

	return entities.Actor{
		ID:    actorID,
		Role:  role,
		Email: claims.Email,
	}, nil
}

func bearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"authentication required"}`))
}
