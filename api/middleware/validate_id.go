package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/api/validators"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// ValidateID rejects malformed {id} path params with 400 "Invalid ID" before
// any handler touches the store. Orthogonal to auth; composes per route.
func ValidateID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := validators.ParseResourceID(chi.URLParam(r, "id"))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithResourceID(r.Context(), id)))
		})
	}
}
