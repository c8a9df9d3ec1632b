package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/rbac"
)

// AuditUseCase appends and lists audit entries.
type AuditUseCase struct {
	repo   port.AuditRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewAuditUseCase(repo port.AuditRepository, logger *zap.Logger) *AuditUseCase {
	return &AuditUseCase{repo: repo, logger: logger, now: time.Now}
}

// Record appends one entry for actor. The request id of ctx, when set by
// the router, is stored with the entry.
func (u *AuditUseCase) Record(ctx context.Context, actor domain.Actor, in domain.AuditInput) error {
	entry := &domain.AuditEntry{
		ID:          uuid.New(),
		WorkspaceID: actor.WorkspaceID,
		ActorID:     actor.UserID,
		ActorRole:   actor.Role,
		Action:      in.Action,
		EntityType:  in.EntityType,
		EntityID:    in.EntityID,
		Scope:       in.Scope,
		Reason:      in.Reason,
		RequestID:   middleware.GetReqID(ctx),
		CreatedAt:   u.now().UTC(),
	}
	if entry.Scope == "" {
		entry.Scope = domain.ScopeWorkspace
	}
	if in.Metadata != nil {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			return fmt.Errorf("marshal audit metadata: %w", err)
		}
		entry.Metadata = raw
	}
	return u.repo.Append(ctx, entry)
}

// List returns the audit trail of the actor's workspace.
func (u *AuditUseCase) List(ctx context.Context, actor domain.Actor, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	if err := rbac.Require(actor, rbac.PermAuditRead); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return []domain.AuditEntry{}, nil
	}
	filter.WorkspaceID = actor.WorkspaceID
	filter.Limit = domain.NormalizeLimit(filter.Limit)
	return u.repo.List(ctx, filter)
}

// record appends an audit entry on behalf of a mutation that already
// succeeded. A failure is logged and does not undo the mutation.
func record(ctx context.Context, rec port.AuditRecorder, logger *zap.Logger, actor domain.Actor, in domain.AuditInput) {
	if err := rec.Record(ctx, actor, in); err != nil {
		logger.Error("append audit entry",
			zap.String("action", in.Action),
			zap.String("entity_id", in.EntityID),
			zap.String("request_id", middleware.GetReqID(ctx)),
			zap.Error(err))
	}
}
