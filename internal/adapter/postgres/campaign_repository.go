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

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, workspace_id, client_id, external_id, name, platform, status,
budget_cents, currency, start_date, end_date, created_at, updated_at`

// ListCampaigns returns campaigns of the filter's workspace, most recently
// updated first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter domain.ListFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
FROM campaigns
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND ($3::uuid IS NULL OR client_id = $3::uuid)
  AND ($4::text = '' OR platform = $4::text)
  AND ($5::text = '' OR status = $5::text)
ORDER BY updated_at DESC, id
LIMIT $6 OFFSET $7`
	rows, err := r.pool.Query(ctx, query,
		filter.WorkspaceID, filter.ClientIDs, filter.ClientID, string(filter.Platform), string(filter.Status),
		domain.NormalizeLimit(filter.Limit), max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id within a workspace.
func (r *CampaignRepository) GetCampaign(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// ListAdSets returns ad sets of the filter's workspace, optionally limited
// to one campaign.
func (r *CampaignRepository) ListAdSets(ctx context.Context, filter domain.ListFilter) ([]domain.AdSet, error) {
	query := `SELECT id, campaign_id, workspace_id, client_id, name, platform, status,
budget_cents, currency, created_at, updated_at
FROM ad_sets
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND ($3::uuid IS NULL OR client_id = $3::uuid)
  AND ($4::uuid IS NULL OR campaign_id = $4::uuid)
  AND ($5::text = '' OR platform = $5::text)
  AND ($6::text = '' OR status = $6::text)
ORDER BY updated_at DESC, id
LIMIT $7 OFFSET $8`
	rows, err := r.pool.Query(ctx, query,
		filter.WorkspaceID, filter.ClientIDs, filter.ClientID, filter.CampaignID,
		string(filter.Platform), string(filter.Status),
		domain.NormalizeLimit(filter.Limit), max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list ad sets: %w", err)
	}
	adSets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdSet, error) {
		var a domain.AdSet
		err := row.Scan(&a.ID, &a.CampaignID, &a.WorkspaceID, &a.ClientID, &a.Name, &a.Platform, &a.Status,
			&a.BudgetCents, &a.Currency, &a.CreatedAt, &a.UpdatedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ad sets: %w", err)
	}
	return adSets, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.WorkspaceID, &c.ClientID, &c.ExternalID, &c.Name, &c.Platform, &c.Status,
		&c.BudgetCents, &c.Currency, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
