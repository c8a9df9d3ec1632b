package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role of an actor inside a workspace.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Actor is the resolved (user, role, workspace) triple used for every
// authorization decision on a request. It is derived from the bearer token
// and never stored.
type Actor struct {
	UserID      uuid.UUID   `json:"user_id"`
	Email       string      `json:"email"`
	Role        Role        `json:"role"`
	WorkspaceID uuid.UUID   `json:"workspace_id"`
	ClientIDs   []uuid.UUID `json:"client_ids"`
	TokenID     string      `json:"-"`
	// TokenExpiry is when the bearer token stops being valid.
	TokenExpiry time.Time   `json:"-"`
}

// HasWorkspace reports whether the actor is bound to a workspace.
func (a Actor) HasWorkspace() bool {
	return a.WorkspaceID != uuid.Nil
}

// AllClients reports whether the actor may see every client of the
// workspace. Owners and admins are not limited to their client list.
func (a Actor) AllClients() bool {
	return a.Role == RoleOwner || a.Role == RoleAdmin
}

// CanSeeClient reports whether rows of the given client are visible.
// Rows without a client belong to the whole workspace.
func (a Actor) CanSeeClient(clientID *uuid.UUID) bool {
	if clientID == nil || a.AllClients() {
		return true
	}
	return slices.Contains(a.ClientIDs, *clientID)
}

// PermittedClients returns the client filter for list queries. A nil slice
// means no restriction.
func (a Actor) PermittedClients() []uuid.UUID {
	if a.AllClients() {
		return nil
	}
	if a.ClientIDs == nil {
		return []uuid.UUID{}
	}
	return a.ClientIDs
}
