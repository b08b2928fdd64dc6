package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
)

// Repository exposes product persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every stored product.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("created_at").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads a product by its id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SlugExists reports whether any product carries the given slug.
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateFields applies the given assignments to a product, reporting how many
// rows changed.
func (r *Repository) UpdateFields(ctx context.Context, id uuid.UUID, assignments map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(assignments)
	return result.RowsAffected, result.Error
}

// Delete removes a product, reporting how many rows were deleted.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
