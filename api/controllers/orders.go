package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mak-alamin/bestools-server/api/middleware"
	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/api/validators"
	ordersvc "github.com/mak-alamin/bestools-server/internal/orders"
	"github.com/mak-alamin/bestools-server/pkg/enums"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// ListOrders handles GET /orders, the admin view of every order.
func ListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// ListOrdersByEmail handles GET /orders/{email}. The service rejects the read
// unless the principal owns the orders or carries the admin role.
func ListOrdersByEmail(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := svc.ListForOwner(r.Context(), middleware.EmailFromContext(r.Context()), chi.URLParam(r, "email"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

// GetOrder handles GET /order/{id}.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := svc.GetByID(r.Context(), middleware.ResourceIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// CreateOrder handles POST /order. Ownership comes from the token, not the
// body.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), middleware.EmailFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// UpdateOrder handles PATCH /order/{id}, typically flipping the status and
// recording the processor transaction id after payment.
func UpdateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), middleware.ResourceIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DeleteOrder handles DELETE /order/{id}.
func DeleteOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Delete(r.Context(), middleware.ResourceIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

type createOrderRequest struct {
	ProductID   *string         `json:"productId,omitempty"`
	ProductName string          `json:"productName" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	Phone       *string         `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address     *string         `json:"address,omitempty" validate:"omitempty,max=300"`
}

func (p createOrderRequest) toCreateInput() (ordersvc.CreateOrderInput, error) {
	if p.Price.IsNegative() {
		return ordersvc.CreateOrderInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}

	var productID *uuid.UUID
	if p.ProductID != nil {
		id, err := uuid.Parse(*p.ProductID)
		if err != nil {
			return ordersvc.CreateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid ID")
		}
		productID = &id
	}

	return ordersvc.CreateOrderInput{
		ProductID:   productID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Phone:       p.Phone,
		Address:     p.Address,
	}, nil
}

type updateOrderRequest struct {
	Status        *string `json:"status,omitempty"`
	TransactionID *string `json:"transactionId,omitempty" validate:"omitempty,max=120"`
}

func (p updateOrderRequest) toUpdateInput() (ordersvc.UpdateOrderInput, error) {
	input := ordersvc.UpdateOrderInput{TransactionID: p.TransactionID}
	if p.Status != nil {
		status, err := enums.ParseOrderStatus(*p.Status)
		if err != nil {
			return ordersvc.UpdateOrderInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
		}
		input.Status = &status
	}
	return input, nil
}
