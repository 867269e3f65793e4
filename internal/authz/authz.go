// Package authz provides the pure role checks used by the route gate and by
// UI-level show/hide decisions. Comparison is case-insensitive: identity role
// sets are normalized at the decode boundary and inputs are normalized here.
package authz

import "inventory-console/internal/model"

// HasRole reports whether the identity carries the given role.
func HasRole(identity *model.Identity, role string) bool {
	if identity == nil {
		return false
	}

	return identity.Roles.Has(role)
}

// HasAnyRole reports whether the identity carries at least one of the
// required roles. An empty requirement means "no restriction" and is true for
// any present identity; the anonymous case is the gate's to resolve, so a nil
// identity is always false here.
func HasAnyRole(identity *model.Identity, required []string) bool {
	if identity == nil {
		return false
	}

	if len(required) == 0 {
		return true
	}

	for _, role := range required {
		if identity.Roles.Has(role) {
			return true
		}
	}

	return false
}

// HasAllRoles reports whether the identity carries every required role.
func HasAllRoles(identity *model.Identity, required []string) bool {
	if identity == nil {
		return false
	}

	for _, role := range required {
		if !identity.Roles.Has(role) {
			return false
		}
	}

	return true
}
