package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus tracks a studio post through review and publishing.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostApproved  PostStatus = "approved"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostApproved, PostScheduled, PostPublished, PostArchived:
		return true
	}
	return false
}

// MaxPostLength bounds post and variant content in characters.
const MaxPostLength = 5000

// Post is a social post drafted in the studio.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Platform    Platform   `json:"platform"`
	Content     string     `json:"content"`
	Tone        string     `json:"tone,omitempty"`
	TemplateID  string     `json:"template_id,omitempty"`
	Status      PostStatus `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Variants    []Variant  `json:"variants"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Variant is an alternative rendering of a post.
type Variant struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	Content    string    `json:"content"`
	Tone       string    `json:"tone,omitempty"`
	TemplateID string    `json:"template_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostInput is the input of a new post.
type PostInput struct {
	ClientID    *uuid.UUID
	Platform    Platform
	Content     string
	Tone        string
	TemplateID  string
	ScheduledAt *time.Time
}

// PostPatch carries the fields of a partial update. Nil fields are left
// unchanged.
type PostPatch struct {
	Content     *string
	Tone        *string
	TemplateID  *string
	Status      *PostStatus
	ScheduledAt *time.Time
}

// BulkAction is applied to several posts at once.
type BulkAction string

const (
	BulkApprove BulkAction = "approve"
	BulkArchive BulkAction = "archive"
	BulkDelete  BulkAction = "delete"
)

// MaxBulkIDs bounds a bulk request.
const MaxBulkIDs = 100

// PostFilter narrows a post listing.
type PostFilter struct {
	WorkspaceID uuid.UUID
	ClientIDs   []uuid.UUID
	Status      PostStatus
	Platform    Platform
	Limit       int
}
