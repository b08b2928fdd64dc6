package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/types"
)

// slugAttempts bounds the dedup loop; past this the write is rejected rather
// than spinning on a pathological slug.
const slugAttempts = 50

// Service exposes the product collection operations.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (types.MutationResult, error)
	Delete(ctx context.Context, id uuid.UUID) (types.MutationResult, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	UpdateFields(ctx context.Context, id uuid.UUID, assignments map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type service struct {
	repo repository
}

// NewService builds the product service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return products, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find product")
	}
	return product, nil
}

// Create stores a product, deduplicating the slug by suffixing. The first
// collision yields "<slug>-2", later ones count up from there. Best-effort
// only; concurrent writers may still race, per the dedup contract.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	product := input.toModel()
	if product.Slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}

	slug, err := s.dedupSlug(ctx, product.Slug)
	if err != nil {
		return nil, err
	}
	product.Slug = slug

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return product, nil
}

func (s *service) dedupSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for attempt := 2; attempt <= slugAttempts; attempt++ {
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check slug")
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", pkgerrors.New(pkgerrors.CodeConflict, "slug exhausted")
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (types.MutationResult, error) {
	assignments := input.assignments()
	if len(assignments) == 0 {
		return types.MutationResult{Acknowledged: true}, nil
	}

	modified, err := s.repo.UpdateFields(ctx, id, assignments)
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	if modified == 0 {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return types.MutationResult{Acknowledged: true, ModifiedCount: modified}, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) (types.MutationResult, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	if deleted == 0 {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return types.MutationResult{Acknowledged: true, ModifiedCount: deleted}, nil
}
