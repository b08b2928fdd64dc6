package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
	"github.com/mak-alamin/bestools-server/pkg/types"
)

// WriteSuccess returns the payload as-is with a 200. Success bodies are the
// raw resource representation, not an envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteJSON writes an arbitrary payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteError maps a coded error onto the status and message/error payload the
// API promises, logging the full cause chain.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if m := typed.Message(); m != "" && typed.Code() != pkgerrors.CodeInternal {
		msg = m
	}

	payload := types.ErrorPayload{Message: msg}
	if meta.DetailsAllowed {
		if cause := typed.Unwrap(); cause != nil {
			payload.Error = cause.Error()
		}
		if details := typed.Details(); details != nil {
			payload.Details = details
		}
	}

	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"error":      err.Error(),
			"error_code": string(typed.Code()),
			"status":     meta.HTTPStatus,
		})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(logCtx, "request.error", err)
		} else {
			logg.Warn(logCtx, "request.rejected")
		}
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}
