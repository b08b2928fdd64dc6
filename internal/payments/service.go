package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v84"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
)

// Currency is fixed: every Bestools charge is denominated in US dollars.
const Currency = "usd"

// IntentResult carries the client-side secret used to complete payment.
type IntentResult struct {
	ClientSecret string `json:"clientSecret"`
}

// IntentCreator is the single call made against the external processor.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

type orderFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// Service bridges orders to the payment processor.
type Service interface {
	CreateIntent(ctx context.Context, orderID uuid.UUID) (*IntentResult, error)
}

type service struct {
	orders    orderFinder
	processor IntentCreator
}

// NewService builds the payment bridge.
func NewService(orders orderFinder, processor IntentCreator) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if processor == nil {
		return nil, fmt.Errorf("payment processor required")
	}
	return &service{orders: orders, processor: processor}, nil
}

// CreateIntent looks up the order, computes its charge in minor units, and
// asks the processor for an intent. A missing order returns before the
// processor is ever reached.
func (s *service) CreateIntent(ctx context.Context, orderID uuid.UUID) (*IntentResult, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order")
	}

	amount := ChargeAmount(order.Price, order.Quantity)
	if amount <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order amount must be positive")
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, amount, Currency)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create payment intent")
	}

	return &IntentResult{ClientSecret: intent.ClientSecret}, nil
}

// ChargeAmount converts a unit price and quantity into the currency's minor
// unit (cents).
func ChargeAmount(price decimal.Decimal, quantity int) int64 {
	return price.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
