package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/api/validators"
	usersvc "github.com/mak-alamin/bestools-server/internal/users"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// ListUsers handles GET /user.
func ListUsers(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users)
	}
}

// GetUser handles GET /user/{email}.
func GetUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// CreateUser handles POST /user/{email}. The write is idempotent; a repeat
// sign-in acknowledges without inserting a second row.
func CreateUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload usersvc.ProfileInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateOrNoop(r.Context(), chi.URLParam(r, "email"), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// UpsertUser handles PUT /user/{email}.
func UpsertUser(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload usersvc.ProfileInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Upsert(r.Context(), chi.URLParam(r, "email"), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// PromoteAdmin handles PUT /user/admin/{email}.
func PromoteAdmin(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.PromoteAdmin(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
