package controllers

import (
	"net/http"
	"time"

	"github.com/mak-alamin/bestools-server/api/responses"
	usersvc "github.com/mak-alamin/bestools-server/internal/users"
	pkgauth "github.com/mak-alamin/bestools-server/pkg/auth"
	"github.com/mak-alamin/bestools-server/pkg/config"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
	"github.com/mak-alamin/bestools-server/pkg/types"
)

// IssueToken handles GET /jwt?email=. A token is only minted for a stored
// user; an unknown email gets 403 with an empty accessToken, keeping the
// response shape stable for the storefront client.
func IssueToken(svc usersvc.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := usersvc.NormalizeEmail(r.URL.Query().Get("email"))

		if _, err := svc.GetByEmail(r.Context(), email); err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				responses.WriteJSON(w, http.StatusForbidden, types.TokenResponse{})
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := pkgauth.MintAccessToken(jwtCfg, time.Now().UTC(), email)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token"))
			return
		}

		responses.WriteSuccess(w, types.TokenResponse{AccessToken: token})
	}
}
