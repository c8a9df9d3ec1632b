package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"adops/internal/core/domain"
	"adops/internal/core/ingest"
	"adops/internal/core/studio"
)

// TokenParser turns a bearer token into the actor it was issued for.
type TokenParser interface {
	Parse(raw string) (domain.Actor, error)
}

// TokenIssuer mints bearer tokens.
type TokenIssuer interface {
	Issue(actor domain.Actor, ttl time.Duration) (string, time.Time, error)
}

// AuthUseCase resolves and ends sessions.
type AuthUseCase interface {
	// Authenticate returns domain.ErrUnauthorized for missing, invalid,
	// expired or revoked tokens.
	Authenticate(ctx context.Context, raw string) (domain.Actor, error)
	Logout(ctx context.Context, actor domain.Actor) error
}

// AuditRecorder appends audit entries on behalf of an actor.
type AuditRecorder interface {
	Record(ctx context.Context, actor domain.Actor, in domain.AuditInput) error
}

// AuditUseCase records and lists the audit trail.
type AuditUseCase interface {
	AuditRecorder
	List(ctx context.Context, actor domain.Actor, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}

// CampaignUseCase serves the read-only campaign views. WorkspaceID and
// ClientIDs of the filter are always taken from the actor.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Campaign, error)
	ListAdSets(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.AdSet, error)
}

// UploadFile is a received CSV file.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	ClientID    *uuid.UUID
	Body        io.Reader
}

// UploadUseCase validates and records ad-performance uploads.
type UploadUseCase interface {
	// Validate runs the CSV checks without persisting anything.
	Validate(ctx context.Context, actor domain.Actor, body io.Reader) (ingest.Report, error)
	Create(ctx context.Context, actor domain.Actor, file UploadFile) (*domain.DataUpload, error)
	List(ctx context.Context, actor domain.Actor, limit int) ([]domain.DataUpload, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.DataUpload, error)
}

// PostUseCase manages studio posts and their variants.
type PostUseCase interface {
	Create(ctx context.Context, actor domain.Actor, in domain.PostInput) (*domain.Post, error)
	List(ctx context.Context, actor domain.Actor, filter domain.PostFilter) ([]domain.Post, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
	CreateVariant(ctx context.Context, actor domain.Actor, postID uuid.UUID, tone, templateID string) (*domain.Variant, error)
	DeleteVariant(ctx context.Context, actor domain.Actor, postID, variantID uuid.UUID) error
	Bulk(ctx context.Context, actor domain.Actor, action domain.BulkAction, ids []uuid.UUID) (int64, error)
}

// StudioUseCase keeps the per-user studio state.
type StudioUseCase interface {
	Preferences(ctx context.Context, actor domain.Actor) (studio.Preferences, error)
	ApproveMessage(ctx context.Context, actor domain.Actor, message string) (studio.Preferences, error)
	ClearMessage(ctx context.Context, actor domain.Actor) (studio.Preferences, error)
	MarkOnboardingSeen(ctx context.Context, actor domain.Actor, flag string) (studio.Preferences, error)
}

// TrustUseCase exposes the versioned trust documentation.
type TrustUseCase interface {
	// Active is public and needs no actor.
	Active(ctx context.Context) (domain.TrustVersion, error)
	Versions(ctx context.Context, actor domain.Actor) ([]domain.TrustVersion, error)
	Version(ctx context.Context, actor domain.Actor, number int) (domain.TrustVersion, error)
	Diff(ctx context.Context, actor domain.Actor, from, to int) ([]domain.SectionChange, error)
	// Changelog returns versions newest first.
	Changelog(ctx context.Context, actor domain.Actor) ([]domain.TrustVersion, error)
	Publish(ctx context.Context, actor domain.Actor, in domain.TrustPublish) (domain.TrustVersion, error)
	Activate(ctx context.Context, actor domain.Actor, number int) (domain.TrustVersion, error)
	// Rollback activates to, or the highest version below the active one
	// when to is nil.
	Rollback(ctx context.Context, actor domain.Actor, to *int, reason string) (domain.TrustVersion, error)
}
