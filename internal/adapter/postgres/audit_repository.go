package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adops/internal/core/domain"
)

// AuditRepository implements port.AuditRepository. Entries are only ever
// inserted.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Append inserts one entry. Platform scoped entries may have no workspace.
func (r *AuditRepository) Append(ctx context.Context, e *domain.AuditEntry) error {
	var metadata []byte
	if len(e.Metadata) > 0 {
		metadata = e.Metadata
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO audit_logs
(id, workspace_id, actor_id, actor_role, action, entity_type, entity_id, scope, reason, metadata, request_id, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		e.ID, nullUUID(e.WorkspaceID), e.ActorID, string(e.ActorRole), e.Action, e.EntityType, e.EntityID,
		string(e.Scope), e.Reason, metadata, e.RequestID, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List returns entries of the workspace, newest first. Platform entries
// are listed under the workspace of the actor who recorded them.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, workspace_id, actor_id, actor_role, action, entity_type, entity_id, scope, reason, metadata, request_id, created_at
FROM audit_logs
WHERE workspace_id = $1
  AND ($2::text = '' OR entity_type = $2::text)
  AND ($3::text = '' OR entity_id = $3::text)
  AND ($4::text = '' OR action = $4::text)
ORDER BY created_at DESC, id
LIMIT $5 OFFSET $6`,
		filter.WorkspaceID, filter.EntityType, filter.EntityID, filter.Action,
		domain.NormalizeLimit(filter.Limit), max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEntry, error) {
		var (
			e        domain.AuditEntry
			metadata []byte
		)
		err := row.Scan(&e.ID, &e.WorkspaceID, &e.ActorID, &e.ActorRole, &e.Action, &e.EntityType, &e.EntityID,
			&e.Scope, &e.Reason, &metadata, &e.RequestID, &e.CreatedAt)
		e.Metadata = metadata
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit entries: %w", err)
	}
	return entries, nil
}

func nullUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
