package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

// IdentityMiddleware resolves the caller from the X-User-ID header, falling
// back to the guest identity when the header is absent. The role always comes
// from the user store; the X-User-Role header a client may send is only a
// routing hint on its side and is never trusted here.
func IdentityMiddleware(userRepo db.IUserRepository) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(constants.UserIDHeader)
			if userID == "" {
				userID = constants.GuestUserID
			}

			caller := model.Caller{UserID: userID, Role: model.RoleUser}
			user, err := userRepo.GetUserByUsername(r.Context(), userID)
			if err == nil {
				caller.Role = user.Role
			} else if !errors.Is(err, db.ErrNotFound) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "identity resolution failed"})
				return
			}

			ctx := context.WithValue(r.Context(), constants.CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards the back-office routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := util.GetCallerFromContext(r.Context())
		if caller == nil || !caller.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "Admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
