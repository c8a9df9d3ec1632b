package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adops/internal/core/domain"
)

// UploadRepository implements port.UploadRepository using pgxpool.
type UploadRepository struct {
	pool *pgxpool.Pool
}

// NewUploadRepository returns a new repository instance.
func NewUploadRepository(pool *pgxpool.Pool) *UploadRepository {
	return &UploadRepository{pool: pool}
}

const uploadColumns = `id, workspace_id, client_id, uploaded_by, file_name, size_bytes, row_count,
status, preview, errors, object_key, created_at`

// CreateUpload inserts the upload and copies its log entries in a single
// transaction.
func (r *UploadRepository) CreateUpload(ctx context.Context, upload *domain.DataUpload, logs []domain.IngestionLogEntry) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin upload tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO data_uploads (`+uploadColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		upload.ID, upload.WorkspaceID, upload.ClientID, upload.UploadedBy, upload.FileName, upload.SizeBytes,
		upload.RowCount, upload.Status, []byte(upload.Preview), []byte(upload.Errors), upload.ObjectKey, upload.CreatedAt)
	if err != nil {
		if isClientViolation(err) {
			return domain.ErrUnknownClient
		}
		return fmt.Errorf("insert upload: %w", err)
	}
	if len(logs) == 0 {
		return nil
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"ingestion_logs"},
		[]string{"id", "upload_id", "row_number", "column_name", "severity", "message", "created_at"},
		pgx.CopyFromSlice(len(logs), func(i int) ([]any, error) {
			l := logs[i]
			return []any{l.ID, l.UploadID, l.RowNumber, l.Column, string(l.Severity), l.Message, l.CreatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy ingestion logs: %w", err)
	}
	return nil
}

func (r *UploadRepository) ClientExists(ctx context.Context, workspaceID, clientID uuid.UUID) (bool, error) {
	return clientExists(ctx, r.pool, workspaceID, clientID)
}

// ListUploads returns the newest uploads of a workspace.
func (r *UploadRepository) ListUploads(ctx context.Context, filter domain.ListFilter) ([]domain.DataUpload, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+uploadColumns+`
FROM data_uploads
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND ($3::uuid IS NULL OR client_id = $3::uuid)
ORDER BY created_at DESC, id
LIMIT $4 OFFSET $5`,
		filter.WorkspaceID, filter.ClientIDs, filter.ClientID, domain.NormalizeLimit(filter.Limit), max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	uploads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DataUpload, error) {
		return scanUpload(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan uploads: %w", err)
	}
	return uploads, nil
}

// GetUpload returns an upload without its logs.
func (r *UploadRepository) GetUpload(ctx context.Context, workspaceID, id uuid.UUID) (*domain.DataUpload, error) {
	u, err := scanUpload(r.pool.QueryRow(ctx,
		`SELECT `+uploadColumns+` FROM data_uploads WHERE workspace_id = $1 AND id = $2`, workspaceID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get upload: %w", err)
	}
	return &u, nil
}

// ListIngestionLogs returns the log entries of an upload in row order.
func (r *UploadRepository) ListIngestionLogs(ctx context.Context, uploadID uuid.UUID) ([]domain.IngestionLogEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, upload_id, row_number, column_name, severity, message, created_at
FROM ingestion_logs WHERE upload_id = $1 ORDER BY row_number, created_at, id`, uploadID)
	if err != nil {
		return nil, fmt.Errorf("list ingestion logs: %w", err)
	}
	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IngestionLogEntry, error) {
		var l domain.IngestionLogEntry
		err := row.Scan(&l.ID, &l.UploadID, &l.RowNumber, &l.Column, &l.Severity, &l.Message, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ingestion logs: %w", err)
	}
	return logs, nil
}

func scanUpload(row pgx.Row) (domain.DataUpload, error) {
	var (
		u             domain.DataUpload
		preview, errs []byte
	)
	err := row.Scan(&u.ID, &u.WorkspaceID, &u.ClientID, &u.UploadedBy, &u.FileName, &u.SizeBytes, &u.RowCount,
		&u.Status, &preview, &errs, &u.ObjectKey, &u.CreatedAt)
	u.Preview = preview
	u.Errors = errs
	return u, err
}
