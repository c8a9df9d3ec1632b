package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adops/internal/core/domain"
	"adops/internal/core/format"
)

// campaignRow is a campaign with the display fields the dashboard renders
// next to it.
type campaignRow struct {
	ID            uuid.UUID             `json:"id"`
	ClientID      *uuid.UUID            `json:"client_id,omitempty"`
	ExternalID    string                `json:"external_id,omitempty"`
	Name          string                `json:"name"`
	Platform      domain.Platform       `json:"platform"`
	Status        domain.CampaignStatus `json:"status"`
	BudgetCents   int64                 `json:"budget_cents"`
	Currency      string                `json:"currency"`
	StartDate     *time.Time            `json:"start_date,omitempty"`
	EndDate       *time.Time            `json:"end_date,omitempty"`
	StatusBadge   format.Badge          `json:"status_badge"`
	PlatformBadge format.Badge          `json:"platform_badge"`
	BudgetDisplay string                `json:"budget_display"`
	StartDisplay  string                `json:"start_display"`
	EndDisplay    string                `json:"end_display"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func newCampaignRow(c domain.Campaign) campaignRow {
	return campaignRow{
		ID:            c.ID,
		ClientID:      c.ClientID,
		ExternalID:    c.ExternalID,
		Name:          c.Name,
		Platform:      c.Platform,
		Status:        c.Status,
		BudgetCents:   c.BudgetCents,
		Currency:      c.Currency,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		StatusBadge:   format.StatusBadge(c.Status),
		PlatformBadge: format.PlatformBadge(c.Platform),
		BudgetDisplay: format.Currency(c.BudgetCents, c.Currency),
		StartDisplay:  format.Date(c.StartDate),
		EndDisplay:    format.Date(c.EndDate),
		UpdatedAt:     c.UpdatedAt,
	}
}

type adSetRow struct {
	ID            uuid.UUID             `json:"id"`
	CampaignID    uuid.UUID             `json:"campaign_id"`
	ClientID      *uuid.UUID            `json:"client_id,omitempty"`
	Name          string                `json:"name"`
	Platform      domain.Platform       `json:"platform"`
	Status        domain.CampaignStatus `json:"status"`
	BudgetCents   int64                 `json:"budget_cents"`
	Currency      string                `json:"currency"`
	StatusBadge   format.Badge          `json:"status_badge"`
	PlatformBadge format.Badge          `json:"platform_badge"`
	BudgetDisplay string                `json:"budget_display"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func newAdSetRow(a domain.AdSet) adSetRow {
	return adSetRow{
		ID:            a.ID,
		CampaignID:    a.CampaignID,
		ClientID:      a.ClientID,
		Name:          a.Name,
		Platform:      a.Platform,
		Status:        a.Status,
		BudgetCents:   a.BudgetCents,
		Currency:      a.Currency,
		StatusBadge:   format.StatusBadge(a.Status),
		PlatformBadge: format.PlatformBadge(a.Platform),
		BudgetDisplay: format.Currency(a.BudgetCents, a.Currency),
		UpdatedAt:     a.UpdatedAt,
	}
}

// listQuery holds the query parameters shared by the campaign and ad-set
// listings.
type listQuery struct {
	Platform   string `query:"platform" validate:"omitempty,oneof=meta google tiktok linkedin"`
	Status     string `query:"status" validate:"omitempty,oneof=active paused completed archived"`
	ClientID   string `query:"client_id" validate:"omitempty,uuid"`
	CampaignID string `query:"campaign_id" validate:"omitempty,uuid"`
	Limit      int    `query:"limit" validate:"gte=0"`
	Offset     int    `query:"offset" validate:"gte=0"`
}

// parseListFilter reads and validates the listing query of r.
func parseListFilter(r *http.Request) (domain.ListFilter, error) {
	q := r.URL.Query()
	lq := listQuery{
		Platform:   q.Get("platform"),
		Status:     q.Get("status"),
		ClientID:   q.Get("client_id"),
		CampaignID: q.Get("campaign_id"),
	}
	var err error
	if lq.Limit, err = parseInt("limit", q.Get("limit"), 0); err != nil {
		return domain.ListFilter{}, err
	}
	if lq.Offset, err = parseInt("offset", q.Get("offset"), 0); err != nil {
		return domain.ListFilter{}, err
	}
	if err := validateStruct(lq); err != nil {
		return domain.ListFilter{}, err
	}

	filter := domain.ListFilter{
		Platform: domain.Platform(lq.Platform),
		Status:   domain.CampaignStatus(lq.Status),
		Limit:    lq.Limit,
		Offset:   lq.Offset,
	}
	if filter.ClientID, err = parseOptionalUUID("client_id", lq.ClientID); err != nil {
		return domain.ListFilter{}, err
	}
	if filter.CampaignID, err = parseOptionalUUID("campaign_id", lq.CampaignID); err != nil {
		return domain.ListFilter{}, err
	}
	return filter, nil
}

// handleListCampaigns returns the campaigns visible to the actor.
// Invalid filters produce HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaigns, err := h.svc.Campaigns.ListCampaigns(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows := make([]campaignRow, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, newCampaignRow(c))
	}
	h.ok(w, r, rows)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Campaigns.GetCampaign(r.Context(), actorOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, newCampaignRow(*campaign))
}

func (h *Handler) handleCampaignAdSets(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	filter, err := parseListFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	filter.CampaignID = &id
	h.listAdSets(w, r, filter)
}

func (h *Handler) handleListAdSets(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.listAdSets(w, r, filter)
}

func (h *Handler) listAdSets(w http.ResponseWriter, r *http.Request, filter domain.ListFilter) {
	adSets, err := h.svc.Campaigns.ListAdSets(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rows := make([]adSetRow, 0, len(adSets))
	for _, a := range adSets {
		rows = append(rows, newAdSetRow(a))
	}
	h.ok(w, r, rows)
}
