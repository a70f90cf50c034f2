// File: internal/authz/gate_test.go
package authz

import (
	"testing"

	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCheckOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.NoError(t, CheckOwner(owner, owner))
	assert.ErrorIs(t, CheckOwner(other, owner), common.ErrForbidden)
	assert.ErrorIs(t, CheckOwner(uuid.Nil, owner), common.ErrForbidden)
	assert.ErrorIs(t, CheckOwner(uuid.Nil, uuid.Nil), common.ErrForbidden,
		"an unauthenticated caller must never pass the owner check")
}

func TestCheckRole(t *testing.T) {
	assert.NoError(t, CheckRole(common.RoleAdmin, common.RoleAdmin))
	assert.NoError(t, CheckRole(common.RoleStudent, common.RoleStudent))

	// No hierarchy: ADMIN does not satisfy a STUDENT requirement and
	// vice versa.
	assert.ErrorIs(t, CheckRole(common.RoleAdmin, common.RoleStudent), common.ErrForbidden)
	assert.ErrorIs(t, CheckRole(common.RoleStudent, common.RoleAdmin), common.ErrForbidden)
	assert.ErrorIs(t, CheckRole(common.RoleAlumni, common.RoleAdmin), common.ErrForbidden)
	assert.ErrorIs(t, CheckRole("", common.RoleAdmin), common.ErrForbidden)
}
