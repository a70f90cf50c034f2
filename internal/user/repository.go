// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for user data operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByProvider(ctx context.Context, provider, oauthID string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role string) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM user repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// NormalizeEmail fixes the email case-sensitivity policy: addresses are
// stored and compared lowercased and trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

// Create inserts a new user record. The unique constraints on email and
// (oauth_provider, oauth_id) are the authority for the uniqueness invariant;
// a race past the service-level pre-check still surfaces as a conflict here.
func (r *gormRepository) Create(ctx context.Context, user *User) error {
	user.Email = NormalizeEmail(user.Email)
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "oauth") {
				return common.ErrConflict.WithDetails("This social account is already linked to a user.")
			}
			return common.ErrConflict.WithDetails("Email already registered.")
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by their email address.
func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this email.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByID retrieves a user by their ID.
func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this ID.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByProvider retrieves a user by their OAuth provider and provider-specific ID.
func (r *gormRepository) FindByProvider(ctx context.Context, provider, oauthID string) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).
		Where("oauth_provider = ? AND oauth_id = ?", provider, oauthID).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found for this provider identity.")
		}
		return nil, err
	}
	return &userModel, nil
}

// Update modifies an existing user record.
func (r *gormRepository) Update(ctx context.Context, user *User) error {
	user.Email = NormalizeEmail(user.Email)
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "oauth") {
				return common.ErrConflict.WithDetails("This social account is already linked to another user.")
			}
			return common.ErrConflict.WithDetails("Update failed: email already taken.")
		}
		return err
	}
	return nil
}

// UpdateRole sets the user's role. When tx is non-nil the update joins the
// caller's transaction so role escalation commits atomically with the
// workflow that triggered it.
func (r *gormRepository) UpdateRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role string) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	result := db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("User not found with this ID.")
	}
	return nil
}

// FindByIDs retrieves users for a set of IDs, used by chat partner listings.
func (r *gormRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
