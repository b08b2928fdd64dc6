package controllers

import (
	"net/http"

	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/api/validators"
	paymentsvc "github.com/mak-alamin/bestools-server/internal/payments"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

type paymentIntentRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

// CreatePaymentIntent handles POST /create-payment-intent. The order must
// already exist; the processor is never called for an unknown order.
func CreatePaymentIntent(svc paymentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload paymentIntentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParseResourceID(payload.OrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		intent, err := svc.CreateIntent(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, intent)
	}
}
