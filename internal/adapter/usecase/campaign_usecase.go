package usecase

import (
	"context"

	"github.com/google/uuid"

	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/rbac"
)

// CampaignUseCase serves the read-only campaign and ad set views. Reads
// fail open: an actor without a workspace gets empty lists.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListCampaigns returns the campaigns visible to actor.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.Campaign, error) {
	if err := rbac.Require(actor, rbac.PermCampaignsRead); err != nil {
		return nil, err
	}
	filter, ok := scopeFilter(actor, filter)
	if !ok {
		return []domain.Campaign{}, nil
	}
	return u.repo.ListCampaigns(ctx, filter)
}

// GetCampaign returns a campaign. Campaigns of clients the actor cannot
// see are reported as not found.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Campaign, error) {
	if err := rbac.Require(actor, rbac.PermCampaignsRead); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return nil, domain.ErrCampaignNotFound
	}
	c, err := u.repo.GetCampaign(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeClient(c.ClientID) {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// ListAdSets returns the ad sets visible to actor. When the filter names
// a campaign, that campaign must be visible.
func (u *CampaignUseCase) ListAdSets(ctx context.Context, actor domain.Actor, filter domain.ListFilter) ([]domain.AdSet, error) {
	if err := rbac.Require(actor, rbac.PermCampaignsRead); err != nil {
		return nil, err
	}
	filter, ok := scopeFilter(actor, filter)
	if !ok {
		return []domain.AdSet{}, nil
	}
	if filter.CampaignID != nil {
		if _, err := u.GetCampaign(ctx, actor, *filter.CampaignID); err != nil {
			return nil, err
		}
	}
	return u.repo.ListAdSets(ctx, filter)
}

// scopeFilter binds the filter to the actor's workspace and clients. It
// reports false when nothing can be visible.
func scopeFilter(actor domain.Actor, filter domain.ListFilter) (domain.ListFilter, bool) {
	if !actor.HasWorkspace() {
		return filter, false
	}
	if filter.ClientID != nil && !actor.CanSeeClient(filter.ClientID) {
		return filter, false
	}
	filter.WorkspaceID = actor.WorkspaceID
	filter.ClientIDs = actor.PermittedClients()
	filter.Limit = domain.NormalizeLimit(filter.Limit)
	return filter, true
}

// checkClient rejects a client the actor cannot reach or that is not part
// of its workspace. A nil client means the row belongs to the workspace.
func checkClient(ctx context.Context, clients port.ClientLookup, actor domain.Actor, clientID *uuid.UUID) error {
	if clientID == nil {
		return nil
	}
	if !actor.CanSeeClient(clientID) {
		return domain.ErrForbidden.WithDetail("reason", "client not accessible")
	}
	ok, err := clients.ClientExists(ctx, actor.WorkspaceID, *clientID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownClient.WithDetail("client_id", clientID.String())
	}
	return nil
}
