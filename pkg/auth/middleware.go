package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Authenticator struct {
	jwt   JWTServiceInterface
	users UserFinder
}

func NewAuthenticator(jwt JWTServiceInterface, users UserFinder) *Authenticator {
	return &Authenticator{jwt: jwt, users: users}
}

// Middleware accepts a bearer token, reloads the user and rejects unknown
// or blocked accounts. The role in context comes from the database, not
// the token, so role changes apply immediately.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := a.jwt.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := a.users.FindByID(r.Context(), claims.ID())
		if err != nil {
			zap.L().Error("can't load user for token", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "User not found")
			return
		}
		if user.IsBlocked {
			utils.RespondWithError(w, http.StatusForbidden, "Account is blocked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
		ctx = context.WithValue(ctx, RoleKey, user.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCapability lets the request through only when the caller's role holds c.
func RequireCapability(c domain.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(RoleKey).(domain.Role)
			if !domain.Authorize(role, c) {
				utils.RespondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorFromContext returns the caller placed in ctx by Middleware.
func ActorFromContext(ctx context.Context) domain.Actor {
	id, _ := ctx.Value(UserIDKey).(uuid.UUID)
	role, _ := ctx.Value(RoleKey).(domain.Role)
	return domain.Actor{ID: id, Role: role}
}

// WithActor stores an actor in ctx the same way Middleware does.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, actor.ID)
	return context.WithValue(ctx, RoleKey, actor.Role)
}
