package domain

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the advertising network a campaign runs on.
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
	PlatformLinkedIn Platform = "linkedin"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformLinkedIn}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformLinkedIn:
		return true
	}
	return false
}

// CampaignStatus is shared by campaigns and ad sets.
type CampaignStatus string

const (
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusArchived  CampaignStatus = "archived"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Campaign represents an advertising campaign written by the external
// ingestion process. Budgets are stored in integer units (cents).
type Campaign struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	ClientID    *uuid.UUID
	ExternalID  string
	Name        string
	Platform    Platform
	Status      CampaignStatus
	BudgetCents int64
	Currency    string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdSet is a targeting/budget group inside a campaign.
type AdSet struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	WorkspaceID uuid.UUID
	ClientID    *uuid.UUID
	Name        string
	Platform    Platform
	Status      CampaignStatus
	BudgetCents int64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFilter scopes a read to a workspace and, optionally, a set of
// clients. ClientIDs nil means every client; an empty non-nil slice means
// none.
type ListFilter struct {
	WorkspaceID uuid.UUID
	ClientIDs   []uuid.UUID
	ClientID    *uuid.UUID
	CampaignID  *uuid.UUID
	Platform    Platform
	Status      CampaignStatus
	Limit       int
	Offset      int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// NormalizeLimit clamps a requested page size.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
