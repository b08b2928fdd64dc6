package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/types"
)

// Service exposes the user collection operations.
type Service interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateOrNoop(ctx context.Context, email string, input ProfileInput) (types.MutationResult, error)
	Upsert(ctx context.Context, email string, input ProfileInput) (*models.User, error)
	PromoteAdmin(ctx context.Context, email string) (types.MutationResult, error)
}

type repository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateIfAbsent(ctx context.Context, user *models.User) (bool, error)
	Upsert(ctx context.Context, user *models.User, assignments map[string]any) error
	SetRole(ctx context.Context, email string, role enums.Role) (int64, error)
}

type service struct {
	repo repository
}

// NewService builds the user service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	return users, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}
	return user, nil
}

// CreateOrNoop inserts the user on first sign-in. A repeat call for the same
// email succeeds without a second insert.
func (s *service) CreateOrNoop(ctx context.Context, email string, input ProfileInput) (types.MutationResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	created, err := s.repo.CreateIfAbsent(ctx, input.toModel(email))
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	result := types.MutationResult{Acknowledged: true}
	if created {
		result.ModifiedCount = 1
	}
	return result, nil
}

// Upsert creates the user when absent, otherwise replaces exactly the
// submitted profile fields.
func (s *service) Upsert(ctx context.Context, email string, input ProfileInput) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	assignments := input.assignments()
	if len(assignments) == 0 {
		// Nothing to set; still an upsert so the row must exist afterwards.
		if _, err := s.repo.CreateIfAbsent(ctx, input.toModel(email)); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert user")
		}
	} else if err := s.repo.Upsert(ctx, input.toModel(email), assignments); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert user")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload user")
	}
	return user, nil
}

func (s *service) PromoteAdmin(ctx context.Context, email string) (types.MutationResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return types.MutationResult{}, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	modified, err := s.repo.SetRole(ctx, email, enums.RoleAdmin)
	if err != nil {
		return types.MutationResult{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "promote user")
	}
	return types.MutationResult{Acknowledged: true, ModifiedCount: modified}, nil
}
