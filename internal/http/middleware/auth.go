package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"issue-tracker/internal/auth"
	"issue-tracker/internal/http/api"
	"issue-tracker/internal/models"
	repo "issue-tracker/internal/repository"

	"github.com/go-chi/render"
)

type key int

const userKey key = 1

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type UserGetter interface {
	GetById(ctx context.Context, userID int64) (*models.User, error)
}

// Auth resolves the acting user from the Bearer token on every request and
// stores it in the request context. Nothing is cached between requests.
func Auth(verifier TokenVerifier, users UserGetter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeMissingToken, "missing token"))
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeInvalidToken, "invalid token"))
				return
			}

			user, err := users.GetById(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, api.Error(api.ErrCodeUnknownSubject, "user not found"))
					return
				}
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, api.InternalError())
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// ContextWithUser stores the actor the way Auth does.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the actor stored by Auth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
