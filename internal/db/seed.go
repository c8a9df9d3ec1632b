package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adops/internal/core/domain"
)

// Demo identifiers are fixed so that cmd/devtoken can mint tokens for the
// seeded workspace.
var (
	DemoWorkspaceID = uuid.MustParse("6f1c1f4e-8a51-4c1b-9a4b-3d8f0f7f2a01")
	DemoClientIDs   = []uuid.UUID{
		uuid.MustParse("0b7d5c1e-2f3a-4e8b-a1c9-5d6e7f8a9b01"),
		uuid.MustParse("0b7d5c1e-2f3a-4e8b-a1c9-5d6e7f8a9b02"),
	}
)

// Seed inserts a demo workspace with two clients, campaigns on every
// platform and a few ad sets per campaign. Re-running it is a no-op.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	_, err := db.Exec(ctx, `INSERT INTO workspaces (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		DemoWorkspaceID, "Demo agency")
	if err != nil {
		return err
	}
	for i, id := range DemoClientIDs {
		_, err = db.Exec(ctx, `INSERT INTO clients (id, workspace_id, name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			id, DemoWorkspaceID, fmt.Sprintf("Client %d", i+1))
		if err != nil {
			return err
		}
	}

	statuses := []domain.CampaignStatus{domain.StatusActive, domain.StatusPaused, domain.StatusCompleted, domain.StatusArchived}
	currencies := []string{"USD", "EUR", "GBP"}
	for i := 1; i <= 8; i++ {
		platform := domain.Platforms[(i-1)%len(domain.Platforms)]
		clientID := DemoClientIDs[i%len(DemoClientIDs)]
		campaignID := uuid.NewSHA1(DemoWorkspaceID, []byte(fmt.Sprintf("campaign-%d", i)))
		start := time.Now().AddDate(0, 0, -r.Intn(30))
		end := start.AddDate(0, 1, 0)
		status := statuses[r.Intn(len(statuses))]
		currency := currencies[r.Intn(len(currencies))]
		budget := int64(50000 + r.Intn(450000))

		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, workspace_id, client_id, external_id, name, platform, status, budget_cents, currency, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			campaignID, DemoWorkspaceID, clientID, fmt.Sprintf("ext-%d", 1000+i), fmt.Sprintf("Campaign %d", i),
			string(platform), string(status), budget, currency, start, end)
		if err != nil {
			return err
		}

		for j := 1; j <= 3; j++ {
			adSetID := uuid.NewSHA1(campaignID, []byte(fmt.Sprintf("adset-%d", j)))
			_, err = db.Exec(ctx, `INSERT INTO ad_sets
    (id, campaign_id, workspace_id, client_id, name, platform, status, budget_cents, currency)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT DO NOTHING`,
				adSetID, campaignID, DemoWorkspaceID, clientID, fmt.Sprintf("Ad set %d.%d", i, j),
				string(platform), string(status), budget/3, currency)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
