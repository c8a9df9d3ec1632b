package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditScope tells whether an entry concerns tenant data or the platform
// itself.
type AuditScope string

const (
	ScopeWorkspace AuditScope = "workspace"
	ScopePlatform  AuditScope = "platform"
)

// Audit actions written by the service.
const (
	ActionUploadCreated   = "upload.created"
	ActionPostCreated     = "post.created"
	ActionPostUpdated     = "post.updated"
	ActionPostDeleted     = "post.deleted"
	ActionVariantCreated  = "post.variant_created"
	ActionVariantDeleted  = "post.variant_deleted"
	ActionPostsBulk       = "post.bulk"
	ActionTrustPublished  = "trust.published"
	ActionTrustActivated  = "trust.activated"
	ActionTrustRolledBack = "trust.rolled_back"
	ActionSessionRevoked  = "session.revoked"
)

// AuditEntry is an append-only record of a mutating action.
type AuditEntry struct {
	ID          uuid.UUID       `json:"id"`
	WorkspaceID uuid.UUID       `json:"workspace_id"`
	ActorID     uuid.UUID       `json:"actor_id"`
	ActorRole   Role            `json:"actor_role"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Scope       AuditScope      `json:"scope"`
	Reason      string          `json:"reason,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	RequestID   string          `json:"request_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AuditInput is what a mutating operation records. Metadata is marshalled
// to JSON when non-nil.
type AuditInput struct {
	Action     string
	EntityType string
	EntityID   string
	Scope      AuditScope
	Reason     string
	Metadata   any
}

// AuditFilter narrows an audit listing. WorkspaceID is always required.
type AuditFilter struct {
	WorkspaceID uuid.UUID
	EntityType  string
	EntityID    string
	Action      string
	Limit       int
	Offset      int
}
