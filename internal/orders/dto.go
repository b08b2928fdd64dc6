package orders

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
)

// CreateOrderInput holds a validated payload to place an order. The owner
// email always comes from the authenticated principal, never the body.
type CreateOrderInput struct {
	ProductID   *uuid.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	Phone       *string
	Address     *string
}

func (in CreateOrderInput) toModel(ownerEmail string) *models.Order {
	return &models.Order{
		UserEmail:   ownerEmail,
		ProductID:   in.ProductID,
		ProductName: strings.TrimSpace(in.ProductName),
		Price:       in.Price,
		Quantity:    in.Quantity,
		Status:      enums.OrderStatusPending,
		Phone:       in.Phone,
		Address:     in.Address,
	}
}

// UpdateOrderInput holds the partial-update fields, typically a payment
// confirmation setting status and transaction id.
type UpdateOrderInput struct {
	Status        *enums.OrderStatus
	TransactionID *string
}

func (in UpdateOrderInput) assignments() map[string]any {
	out := map[string]any{}
	if in.Status != nil {
		out["status"] = *in.Status
	}
	if in.TransactionID != nil {
		out["transaction_id"] = *in.TransactionID
	}
	return out
}
