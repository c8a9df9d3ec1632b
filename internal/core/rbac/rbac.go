// Package rbac decides which roles may perform which actions.
package rbac

import (
	"slices"

	"adops/internal/core/domain"
)

type Permission string

const (
	PermCampaignsRead Permission = "campaigns:read"
	PermPostsRead     Permission = "posts:read"
	PermPostsWrite    Permission = "posts:write"
	PermUploadsRead   Permission = "uploads:read"
	PermUploadsWrite  Permission = "uploads:write"
	PermAuditRead     Permission = "audit:read"
	PermTrustRead     Permission = "trust:read"
	PermTrustPublish  Permission = "trust:publish"
	// PermTrustActivate covers both activation and rollback.
	PermTrustActivate Permission = "trust:activate"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[domain.Role][]Permission{
	domain.RoleOwner: {
		PermCampaignsRead, PermPostsRead, PermPostsWrite, PermUploadsRead, PermUploadsWrite,
		PermAuditRead, PermTrustRead, PermTrustPublish, PermTrustActivate,
	},
	domain.RoleAdmin: {
		PermCampaignsRead, PermPostsRead, PermPostsWrite, PermUploadsRead, PermUploadsWrite,
		PermAuditRead, PermTrustRead, PermTrustPublish,
	},
	domain.RoleOperator: {
		PermCampaignsRead, PermPostsRead, PermPostsWrite, PermUploadsRead, PermUploadsWrite,
		PermTrustRead,
	},
	domain.RoleViewer: {
		PermCampaignsRead, PermPostsRead, PermUploadsRead, PermTrustRead,
	},
}

// Known reports whether perm is a permission of this service.
func Known(perm Permission) bool {
	return slices.Contains(RolePermissions[domain.RoleOwner], perm)
}

// Can checks if a role has a specific permission.
func Can(role domain.Role, perm Permission) bool {
	return slices.Contains(RolePermissions[role], perm)
}

// Normalize maps an arbitrary role string onto a known role. Unknown
// values get the least privileged role.
func Normalize(role string) domain.Role {
	switch r := domain.Role(role); r {
	case domain.RoleOwner, domain.RoleAdmin, domain.RoleOperator, domain.RoleViewer:
		return r
	default:
		return domain.RoleViewer
	}
}

// Require returns domain.ErrForbidden when the actor lacks perm.
func Require(actor domain.Actor, perm Permission) error {
	if !Can(actor.Role, perm) {
		return domain.ErrForbidden.WithDetail("permission", string(perm))
	}
	return nil
}
