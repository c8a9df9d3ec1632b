package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// foreignKeyViolation is the SQLSTATE of a failed REFERENCES check.
const foreignKeyViolation = "23503"

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func clientExists(ctx context.Context, q rowQuerier, workspaceID, clientID uuid.UUID) (bool, error) {
	var ok bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND workspace_id = $2)`,
		clientID, workspaceID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("lookup client: %w", err)
	}
	return ok, nil
}

// isClientViolation reports whether err is the client_id foreign key
// failing, which happens when a client is deleted between lookup and
// insert.
func isClientViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == foreignKeyViolation && strings.HasSuffix(pgErr.ConstraintName, "_client_id_fkey")
}
