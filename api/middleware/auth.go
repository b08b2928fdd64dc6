package middleware

import (
	"net/http"
	"strings"

	"github.com/mak-alamin/bestools-server/api/responses"
	pkgAuth "github.com/mak-alamin/bestools-server/pkg/auth"
	"github.com/mak-alamin/bestools-server/pkg/config"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// principal email. The three rejection states are distinct: no header at all,
// a header with no token segment, and a token that fails verification.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "UnAuthorized access"))
				return
			}

			segments := strings.Fields(raw)
			if len(segments) < 2 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Token Not Found"))
				return
			}
			token := segments[1]

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "Forbidden access"))
				return
			}

			ctx := WithEmail(r.Context(), claims.Email)
			if logg != nil {
				ctx = logg.WithEmail(ctx, claims.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
