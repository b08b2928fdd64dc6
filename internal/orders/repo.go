package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
)

// Repository exposes order persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every stored order.
func (r *Repository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("created_at").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByEmail returns the orders owned by the given email.
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID loads an order by its id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateFields applies the given assignments to an order, reporting how many
// rows changed.
func (r *Repository) UpdateFields(ctx context.Context, id uuid.UUID, assignments map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(assignments)
	return result.RowsAffected, result.Error
}

// Delete removes an order, reporting how many rows were deleted.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
