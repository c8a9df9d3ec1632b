package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"adops/internal/core/domain"
)

// CampaignRepository reads campaigns and ad sets. Rows are written by the
// external ingestion process, so the port is read-only.
type CampaignRepository interface {
	// ListCampaigns returns campaigns matching the filter ordered by most
	// recently updated first.
	ListCampaigns(ctx context.Context, filter domain.ListFilter) ([]domain.Campaign, error)
	// GetCampaign returns domain.ErrCampaignNotFound when no campaign with
	// the id exists in the workspace.
	GetCampaign(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Campaign, error)
	// ListAdSets returns ad sets matching the filter.
	ListAdSets(ctx context.Context, filter domain.ListFilter) ([]domain.AdSet, error)
}

// ClientLookup resolves client ids before a row references them.
type ClientLookup interface {
	// ClientExists reports whether the client belongs to the workspace.
	ClientExists(ctx context.Context, workspaceID, clientID uuid.UUID) (bool, error)
}

// UploadRepository stores uploads and their ingestion logs.
type UploadRepository interface {
	ClientLookup
	// CreateUpload stores the upload and its log entries atomically.
	CreateUpload(ctx context.Context, upload *domain.DataUpload, logs []domain.IngestionLogEntry) error
	ListUploads(ctx context.Context, filter domain.ListFilter) ([]domain.DataUpload, error)
	// GetUpload returns domain.ErrUploadNotFound when absent.
	GetUpload(ctx context.Context, workspaceID, id uuid.UUID) (*domain.DataUpload, error)
	ListIngestionLogs(ctx context.Context, uploadID uuid.UUID) ([]domain.IngestionLogEntry, error)
}

// AuditRepository is the append-only audit trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}

// PostRepository persists studio posts and their variants.
type PostRepository interface {
	ClientLookup
	CreatePost(ctx context.Context, post *domain.Post) error
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	// GetPost returns the post with its variants or domain.ErrPostNotFound.
	GetPost(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Post, error)
	UpdatePost(ctx context.Context, post *domain.Post) error
	// DeletePost returns domain.ErrPostNotFound when nothing was deleted.
	DeletePost(ctx context.Context, workspaceID, id uuid.UUID) error
	CreateVariant(ctx context.Context, variant *domain.Variant) error
	// DeleteVariant returns domain.ErrVariantNotFound when nothing was
	// deleted.
	DeleteVariant(ctx context.Context, postID, variantID uuid.UUID) error
	// BulkSetStatus updates the status of the listed posts the client
	// filter allows and returns the number of rows changed.
	BulkSetStatus(ctx context.Context, workspaceID uuid.UUID, clientIDs, ids []uuid.UUID, status domain.PostStatus) (int64, error)
	// BulkDelete deletes the listed posts the client filter allows and
	// returns the number of rows removed.
	BulkDelete(ctx context.Context, workspaceID uuid.UUID, clientIDs, ids []uuid.UUID) (int64, error)
}

// FileStore archives raw uploaded files.
type FileStore interface {
	// Put stores the object and returns the key it was stored under.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// TrustStore keeps the versioned trust documentation.
type TrustStore interface {
	// Publish stores content as the next version and returns it.
	Publish(ctx context.Context, content domain.TrustContent, name, changelog, author string) (domain.TrustVersion, error)
	// List returns every version ordered by number, content omitted.
	List(ctx context.Context) ([]domain.TrustVersion, error)
	// Get returns a version with its content or domain.ErrVersionNotFound.
	Get(ctx context.Context, number int) (domain.TrustVersion, error)
	// Active returns the active version with its content or
	// domain.ErrNoActiveVersion.
	Active(ctx context.Context) (domain.TrustVersion, error)
	// Activate points the active marker at the given version.
	Activate(ctx context.Context, number int) error
}

// PreferenceStore persists studio preferences per user and workspace.
type PreferenceStore interface {
	// Load returns stored preferences; found is false when none exist yet.
	Load(ctx context.Context, workspaceID, userID uuid.UUID) (raw []byte, found bool, err error)
	// Update replaces the stored document with the result of fn. fn sees
	// the current document and may run more than once when another writer
	// changes it concurrently. An error from fn aborts the update.
	Update(ctx context.Context, workspaceID, userID uuid.UUID, fn func(raw []byte, found bool) ([]byte, error)) error
}

// SessionStore tracks revoked bearer tokens.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
