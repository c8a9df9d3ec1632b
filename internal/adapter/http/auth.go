package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"adops/internal/core/domain"
	"adops/internal/core/rbac"
)

type meResponse struct {
	UserID      uuid.UUID         `json:"user_id"`
	Email       string            `json:"email"`
	Role        domain.Role       `json:"role"`
	WorkspaceID *uuid.UUID        `json:"workspace_id"`
	ClientIDs   []uuid.UUID       `json:"client_ids"`
	AllClients  bool              `json:"all_clients"`
	Permissions []rbac.Permission `json:"permissions"`
}

// handleMe returns the resolved actor and what it may do.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	actor := actorOf(r)
	resp := meResponse{
		UserID:      actor.UserID,
		Email:       actor.Email,
		Role:        actor.Role,
		ClientIDs:   actor.ClientIDs,
		AllClients:  actor.AllClients(),
		Permissions: rbac.RolePermissions[actor.Role],
	}
	if actor.HasWorkspace() {
		ws := actor.WorkspaceID
		resp.WorkspaceID = &ws
	}
	if resp.ClientIDs == nil {
		resp.ClientIDs = []uuid.UUID{}
	}
	if resp.Permissions == nil {
		resp.Permissions = []rbac.Permission{}
	}
	h.ok(w, r, resp)
}

// handleLogout revokes the bearer token of the request.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Auth.Logout(r.Context(), actorOf(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, map[string]bool{"revoked": true})
}

type permissionCheck struct {
	Permission rbac.Permission `json:"permission"`
	Role       domain.Role     `json:"role"`
	Allowed    bool            `json:"allowed"`
}

// handlePermissionCheck answers whether the actor holds ?permission=.
func (h *Handler) handlePermissionCheck(w http.ResponseWriter, r *http.Request) {
	perm := rbac.Permission(r.URL.Query().Get("permission"))
	if perm == "" {
		h.writeError(w, r, domain.Validation("permission is required"))
		return
	}
	if !rbac.Known(perm) {
		h.writeError(w, r, domain.Validation("unknown permission %q", perm))
		return
	}
	actor := actorOf(r)
	h.ok(w, r, permissionCheck{Permission: perm, Role: actor.Role, Allowed: rbac.Can(actor.Role, perm)})
}
