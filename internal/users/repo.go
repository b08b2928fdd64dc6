package users

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
)

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every stored user.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateIfAbsent inserts the user unless a row with the same email already
// exists. The conflict path is a no-op, so concurrent first sign-ins collapse
// to a single row. Reports whether an insert happened.
func (r *Repository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Upsert writes the given assignments for the email, inserting the row when
// absent. Only the submitted fields are replaced on conflict.
func (r *Repository) Upsert(ctx context.Context, user *models.User, assignments map[string]any) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(user).Error
}

// SetRole updates the stored role for the email, reporting how many rows
// changed.
func (r *Repository) SetRole(ctx context.Context, email string, role enums.Role) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Update("role", role)
	return result.RowsAffected, result.Error
}
