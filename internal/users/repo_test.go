package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
	"github.com/mak-alamin/bestools-server/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL DEFAULT '',
  phone TEXT,
  address TEXT,
  role TEXT NOT NULL DEFAULT 'user',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func strPtr(s string) *string { return &s }

func TestCreateIfAbsentIsIdempotent(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Buyer",
		Role:  enums.RoleUser,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Someone Else",
		Role:  enums.RoleUser,
	})
	require.NoError(t, err)
	assert.False(t, created, "duplicate email must be a no-op")

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Buyer", users[0].Name, "first write wins")
}

func TestUpsertReplacesOnlySubmittedFields(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateIfAbsent(ctx, &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Buyer",
		Phone: strPtr("555-0100"),
		Role:  enums.RoleUser,
	})
	require.NoError(t, err)

	err = repo.Upsert(ctx, &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Renamed",
		Role:  enums.RoleUser,
	}, map[string]any{"name": "Renamed"})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "555-0100", *user.Phone, "unsubmitted field must survive the upsert")
}

func TestUpsertInsertsWhenAbsent(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	err := repo.Upsert(ctx, &models.User{
		ID:    uuid.New(),
		Email: "new@example.com",
		Name:  "New User",
		Role:  enums.RoleUser,
	}, map[string]any{"name": "New User"})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New User", user.Name)
}

func TestSetRole(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	_, err := repo.CreateIfAbsent(ctx, &models.User{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Role:  enums.RoleUser,
	})
	require.NoError(t, err)

	modified, err := repo.SetRole(ctx, "buyer@example.com", enums.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	user, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, enums.RoleAdmin, user.Role)

	modified, err = repo.SetRole(ctx, "ghost@example.com", enums.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, modified)
}

func TestFindByEmailMissing(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
