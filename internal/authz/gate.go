// File: internal/authz/gate.go

// Package authz is the single authorization gate for the rest of the system.
// Both checks are pure predicates over already-verified token claims; they
// never touch storage.
package authz

import (
	"uniconnect_backend/internal/common"

	"github.com/google/uuid"
)

// CheckOwner allows a mutation iff the verified caller is the resource owner.
func CheckOwner(callerID, ownerID uuid.UUID) error {
	if callerID == uuid.Nil || callerID != ownerID {
		return common.ErrForbidden.WithDetails("You can only modify your own resources.")
	}
	return nil
}

// CheckRole allows an operation iff the caller's role matches the required
// role exactly. There is no role hierarchy.
func CheckRole(callerRole, requiredRole string) error {
	if callerRole != requiredRole {
		return common.ErrForbidden.WithDetails("You do not have sufficient permissions for this resource.")
	}
	return nil
}
