package middleware

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/curiokids/backend/models"
)

// RoleStore is the slice of the user store the role check needs.
type RoleStore interface {
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// RequireRole allows the request through only when the caller's role, as
// currently stored, is in allowed. Must run after Auth. The role embedded
// in the token is ignored so a promotion or demotion takes effect on the
// next request, not the next login.
func RequireRole(users RoleStore, allowed ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := UserIDFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			user, err := users.UserByID(r.Context(), id)
			if err != nil || user == nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			for _, role := range allowed {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			w.WriteHeader(http.StatusForbidden)
		})
	}
}
