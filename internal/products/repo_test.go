package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT,
  image_url TEXT,
  price NUMERIC NOT NULL,
  min_order_qty INTEGER NOT NULL DEFAULT 1,
  available_qty INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedProduct(t *testing.T, repo *Repository, slug string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        "18V Drill",
		Price:       decimal.NewFromFloat(59.99),
		MinOrderQty: 1,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestSlugExists(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	seedProduct(t, repo, "18v-drill")

	exists, err := repo.SlugExists(context.Background(), "18v-drill")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.SlugExists(context.Background(), "18v-drill-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateFieldsReportsRowsAffected(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	product := seedProduct(t, repo, "18v-drill")
	ctx := context.Background()

	modified, err := repo.UpdateFields(ctx, product.ID, map[string]any{"name": "20V Drill"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	stored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "20V Drill", stored.Name)

	modified, err = repo.UpdateFields(ctx, uuid.New(), map[string]any{"name": "ghost"})
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	repo := NewRepository(setupProductsTestDB(t))
	product := seedProduct(t, repo, "18v-drill")
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	deleted, err = repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
