package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-scheduler/pkg/jwt"
	"clinic-scheduler/pkg/response"
)

type contextKey string

const (
	ActorIDKey   contextKey = "actor_id"
	ActorNameKey contextKey = "actor_name"
)

// ActorMiddleware resolves the acting staff member from a bearer token so
// mutations can be attributed in the logs. A request without an
// Authorization header proceeds anonymously; a present but invalid token is
// rejected.
type ActorMiddleware struct {
	jwtService *jwt.JWTService
}

func NewActorMiddleware(jwtService *jwt.JWTService) *ActorMiddleware {
	return &ActorMiddleware{jwtService: jwtService}
}

func (m *ActorMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, claims.ActorID)
		ctx = context.WithValue(ctx, ActorNameKey, claims.ActorName)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext extracts the acting staff member's id, if any.
func GetActorFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(ActorIDKey).(string)
	return actorID, ok
}
