// File: internal/user/repository_test.go
package user

import (
	"context"
	"testing"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepository(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	require.NoError(t, db.AutoMigrate(&User{}), "Failed to migrate users table")

	return NewGORMRepository(db), db
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	hash := "$2a$10$fakedigestfakedigestfakedigestfakedigest"
	u := &User{
		Name:         "Repo User",
		Email:        "Repo.User@Example.com",
		PasswordHash: &hash,
		Role:         common.RoleStudent,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID, "primary key must be assigned on create")
	assert.Equal(t, "repo.user@example.com", u.Email)

	byEmail, err := repo.FindByEmail(ctx, "REPO.USER@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)
}

func TestRepository_DuplicateEmailIsConflict(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Name: "First", Email: "same@example.com", Role: common.RoleStudent}))

	err := repo.Create(ctx, &User{Name: "Second", Email: "Same@Example.com", Role: common.RoleStudent})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRepository_FindByProvider(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	provider := "GOOGLE"
	oauthID := "sub-999"
	created := &User{
		Name:          "Federated",
		Email:         "federated@example.com",
		Role:          common.RoleStudent,
		OAuthProvider: &provider,
		OAuthID:       &oauthID,
	}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByProvider(ctx, "GOOGLE", "sub-999")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByProvider(ctx, "GOOGLE", "unknown-sub")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepository_UpdateRole(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	u := &User{Name: "Grad", Email: "grad@example.com", Role: common.RoleStudent}
	require.NoError(t, repo.Create(ctx, u))

	// Outside a transaction.
	require.NoError(t, repo.UpdateRole(ctx, nil, u.ID, common.RoleAlumni))
	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAlumni, stored.Role)

	// Joining a caller transaction that rolls back leaves the row alone.
	tx := db.Begin()
	require.NoError(t, repo.UpdateRole(ctx, tx, u.ID, common.RoleAdmin))
	tx.Rollback()
	stored, err = repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, common.RoleAlumni, stored.Role)

	err = repo.UpdateRole(ctx, nil, uuid.New(), common.RoleAlumni)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
