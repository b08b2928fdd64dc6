package payments

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v84"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
)

type fakeOrderFinder struct {
	orders map[uuid.UUID]*models.Order
}

func (f *fakeOrderFinder) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeIntentCreator struct {
	calls    int
	amount   int64
	currency string
	err      error
}

func (f *fakeIntentCreator) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*stripe.PaymentIntent, error) {
	f.calls++
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil
}

func TestCreateIntentChargesMinorUnits(t *testing.T) {
	orderID := uuid.New()
	finder := &fakeOrderFinder{orders: map[uuid.UUID]*models.Order{
		orderID: {ID: orderID, Price: decimal.NewFromFloat(10.00), Quantity: 2},
	}}
	processor := &fakeIntentCreator{}

	svc, err := NewService(finder, processor)
	require.NoError(t, err)

	result, err := svc.CreateIntent(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", result.ClientSecret)
	assert.Equal(t, int64(2000), processor.amount)
	assert.Equal(t, "usd", processor.currency)
}

func TestCreateIntentMissingOrderSkipsProcessor(t *testing.T) {
	processor := &fakeIntentCreator{}
	svc, err := NewService(&fakeOrderFinder{orders: map[uuid.UUID]*models.Order{}}, processor)
	require.NoError(t, err)

	_, err = svc.CreateIntent(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Zero(t, processor.calls, "processor must not be called for an unknown order")
}

func TestCreateIntentProcessorFailureIsDependencyError(t *testing.T) {
	orderID := uuid.New()
	finder := &fakeOrderFinder{orders: map[uuid.UUID]*models.Order{
		orderID: {ID: orderID, Price: decimal.NewFromFloat(10.00), Quantity: 1},
	}}
	processor := &fakeIntentCreator{err: fmt.Errorf("stripe unavailable")}

	svc, err := NewService(finder, processor)
	require.NoError(t, err)

	_, err = svc.CreateIntent(context.Background(), orderID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestCreateIntentRejectsZeroAmount(t *testing.T) {
	orderID := uuid.New()
	finder := &fakeOrderFinder{orders: map[uuid.UUID]*models.Order{
		orderID: {ID: orderID, Price: decimal.Zero, Quantity: 3},
	}}
	processor := &fakeIntentCreator{}

	svc, err := NewService(finder, processor)
	require.NoError(t, err)

	_, err = svc.CreateIntent(context.Background(), orderID)
	require.Error(t, err)
	assert.Zero(t, processor.calls)
}

func TestChargeAmount(t *testing.T) {
	cases := []struct {
		price    string
		quantity int
		want     int64
	}{
		{"10.00", 2, 2000},
		{"59.99", 1, 5999},
		{"0.01", 3, 3},
		{"19.995", 2, 3999},
	}
	for _, tc := range cases {
		price, err := decimal.NewFromString(tc.price)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ChargeAmount(price, tc.quantity), "price %s x %d", tc.price, tc.quantity)
	}
}
