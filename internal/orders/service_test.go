package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
)

type fakeOrderRepo struct {
	byID map[uuid.UUID]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[uuid.UUID]*models.Order{}}
}

func (f *fakeOrderRepo) List(context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByEmail(_ context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.byID {
		if o.UserEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	if o, ok := f.byID[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	copied := *order
	f.byID[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) UpdateFields(_ context.Context, id uuid.UUID, assignments map[string]any) (int64, error) {
	order, ok := f.byID[id]
	if !ok {
		return 0, nil
	}
	if status, ok := assignments["status"].(enums.OrderStatus); ok {
		order.Status = status
	}
	if txn, ok := assignments["transaction_id"].(string); ok {
		order.TransactionID = &txn
	}
	return 1, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

type fakeOrderUserLoader struct {
	byEmail map[string]*models.User
}

func (f *fakeOrderUserLoader) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newOrderService(t *testing.T, repo *fakeOrderRepo, loader *fakeOrderUserLoader) Service {
	t.Helper()
	svc, err := NewService(repo, loader)
	require.NoError(t, err)
	return svc
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, email string) *models.Order {
	t.Helper()
	order := &models.Order{
		UserEmail:   email,
		ProductName: "18V Drill",
		Price:       decimal.NewFromFloat(59.99),
		Quantity:    1,
		Status:      enums.OrderStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestListForOwnerAllowsOwner(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(t, repo, "buyer@example.com")
	seedOrder(t, repo, "other@example.com")
	svc := newOrderService(t, repo, &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	orders, err := svc.ListForOwner(context.Background(), "Buyer@Example.com", "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "buyer@example.com", orders[0].UserEmail)
}

func TestListForOwnerAllowsStoredAdmin(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(t, repo, "buyer@example.com")
	loader := &fakeOrderUserLoader{byEmail: map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", Role: enums.RoleAdmin},
	}}
	svc := newOrderService(t, repo, loader)

	orders, err := svc.ListForOwner(context.Background(), "admin@example.com", "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestListForOwnerRejectsOtherUser(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(t, repo, "buyer@example.com")
	loader := &fakeOrderUserLoader{byEmail: map[string]*models.User{
		"intruder@example.com": {Email: "intruder@example.com", Role: enums.RoleUser},
	}}
	svc := newOrderService(t, repo, loader)

	_, err := svc.ListForOwner(context.Background(), "intruder@example.com", "buyer@example.com")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())
	assert.Equal(t, "forbidden access", typed.Message())
}

func TestCreateBindsOwnerAndPendingStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newOrderService(t, repo, &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	order, err := svc.Create(context.Background(), "Buyer@Example.com", CreateOrderInput{
		ProductName: "18V Drill",
		Price:       decimal.NewFromFloat(59.99),
		Quantity:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", order.UserEmail)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
}

func TestCreateRejectsNonPositiveQuantity(t *testing.T) {
	svc := newOrderService(t, newFakeOrderRepo(), &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	_, err := svc.Create(context.Background(), "buyer@example.com", CreateOrderInput{
		ProductName: "18V Drill",
		Price:       decimal.NewFromFloat(59.99),
		Quantity:    0,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateRecordsPaymentConfirmation(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(t, repo, "buyer@example.com")
	svc := newOrderService(t, repo, &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	paid := enums.OrderStatusPaid
	txn := "pi_12345"
	result, err := svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: &paid, TransactionID: &txn})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	stored := repo.byID[order.ID]
	assert.Equal(t, enums.OrderStatusPaid, stored.Status)
	require.NotNil(t, stored.TransactionID)
	assert.Equal(t, "pi_12345", *stored.TransactionID)
}

func TestUpdateMissingOrderIsNotFound(t *testing.T) {
	svc := newOrderService(t, newFakeOrderRepo(), &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	paid := enums.OrderStatusPaid
	_, err := svc.Update(context.Background(), uuid.New(), UpdateOrderInput{Status: &paid})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteMissingOrderIsNotFound(t *testing.T) {
	svc := newOrderService(t, newFakeOrderRepo(), &fakeOrderUserLoader{byEmail: map[string]*models.User{}})

	_, err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
