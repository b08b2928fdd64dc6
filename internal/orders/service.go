package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/internal/users"
	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/types"
)

// Service exposes the order collection operations.
type Service interface {
	ListAll(ctx context.Context) ([]models.Order, error)
	ListForOwner(ctx context.Context, principalEmail, ownerEmail string) ([]models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, ownerEmail string, input CreateOrderInput) (*models.Order, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (types.MutationResult, error)
	Delete(ctx context.Context, id uuid.UUID) (types.MutationResult, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateFields(ctx context.Context, id uuid.UUID, assignments map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type userLoader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type service struct {
	repo     repository
	userRepo userLoader
}

// NewService builds the order service. The user repo backs the owner check on
// scoped listings.
func NewService(repo repository, userRepo userLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if userRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo, userRepo: userRepo}, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return orders, nil
}

// ListForOwner returns the orders owned by ownerEmail. A principal may only
// read their own orders unless their stored role is admin.
func (s *service) ListForOwner(ctx context.Context, principalEmail, ownerEmail string) ([]models.Order, error) {
	principalEmail = users.NormalizeEmail(principalEmail)
	ownerEmail = users.NormalizeEmail(ownerEmail)

	if principalEmail != ownerEmail {
		principal, err := s.userRepo.FindByEmail(ctx, principalEmail)
		if err != nil || principal == nil || principal.Role != enums.RoleAdmin {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "forbidden access")
		}
	}

	orders, err := s.repo.ListByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders by owner")
	}
	return orders, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find order")
	}
	return order, nil
}

func (s *service) Create(ctx context.Context, ownerEmail string, input CreateOrderInput) (*models.Order, error) {
	ownerEmail = users.NormalizeEmail(ownerEmail)
	if ownerEmail == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "UnAuthorized access")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	order := input.toModel(ownerEmail)
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return order, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (types.MutationResult, error) {
	assignments := input.assignments()
	if len(assignments) == 0 {
		return types.MutationResult{Acknowledged: true}, nil
	}

	modified, err := s.repo.UpdateFields(ctx, id, assignments)
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order")
	}
	if modified == 0 {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return types.MutationResult{Acknowledged: true, ModifiedCount: modified}, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (types.MutationResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cancel order")
	}
	if deleted == 0 {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return types.MutationResult{Acknowledged: true, ModifiedCount: deleted}, nil
}
