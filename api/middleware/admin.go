package middleware

import (
	"context"
	"net/http"

	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// UserLoader resolves the stored user behind an authenticated email.
type UserLoader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAdmin gates a route on the caller's STORED role, not the token. Runs
// after Auth; an unknown principal or a non-admin role is rejected alike.
func RequireAdmin(users UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "UnAuthorized access"))
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if err != nil || user == nil || user.Role != enums.RoleAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
