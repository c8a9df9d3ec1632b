package usecase

import (
	"context"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/rbac"
	"adops/internal/core/studio"
)

// PostUseCase manages studio posts. Every mutation appends one audit
// entry.
type PostUseCase struct {
	repo   port.PostRepository
	audit  port.AuditRecorder
	logger *zap.Logger
	now    func() time.Time
}

func NewPostUseCase(repo port.PostRepository, audit port.AuditRecorder, logger *zap.Logger) *PostUseCase {
	return &PostUseCase{repo: repo, audit: audit, logger: logger, now: time.Now}
}

// Create stores a new draft, or a scheduled post when a publish time is
// given.
func (u *PostUseCase) Create(ctx context.Context, actor domain.Actor, in domain.PostInput) (*domain.Post, error) {
	if err := u.requireWrite(actor); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return nil, domain.ErrForbidden.WithDetail("reason", "no workspace")
	}
	content, err := checkContent(in.Content)
	if err != nil {
		return nil, err
	}
	if !in.Platform.Valid() {
		return nil, domain.Validation("unknown platform %q", in.Platform)
	}
	if err := studio.ValidateSelection(in.Tone, in.TemplateID); err != nil {
		return nil, err
	}
	if err := checkClient(ctx, u.repo, actor, in.ClientID); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	post := &domain.Post{
		ID:          uuid.New(),
		WorkspaceID: actor.WorkspaceID,
		ClientID:    in.ClientID,
		AuthorID:    actor.UserID,
		Platform:    in.Platform,
		Content:     content,
		Tone:        in.Tone,
		TemplateID:  in.TemplateID,
		Status:      domain.PostDraft,
		Variants:    []domain.Variant{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.ScheduledAt != nil {
		if !in.ScheduledAt.After(now) {
			return nil, domain.Validation("scheduled_at must be in the future")
		}
		at := in.ScheduledAt.UTC()
		post.ScheduledAt = &at
		post.Status = domain.PostScheduled
	}
	if err := u.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionPostCreated,
		EntityType: "post",
		EntityID:   post.ID.String(),
		Metadata:   map[string]any{"platform": post.Platform, "status": post.Status},
	})
	return post, nil
}

// List returns posts visible to actor without their variants.
func (u *PostUseCase) List(ctx context.Context, actor domain.Actor, filter domain.PostFilter) ([]domain.Post, error) {
	if err := rbac.Require(actor, rbac.PermPostsRead); err != nil {
		return nil, err
	}
	if !actor.HasWorkspace() {
		return []domain.Post{}, nil
	}
	filter.WorkspaceID = actor.WorkspaceID
	filter.ClientIDs = actor.PermittedClients()
	filter.Limit = domain.NormalizeLimit(filter.Limit)
	posts, err := u.repo.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Variants == nil {
			posts[i].Variants = []domain.Variant{}
		}
	}
	return posts, nil
}

// Get returns a post with its variants.
func (u *PostUseCase) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Post, error) {
	if err := rbac.Require(actor, rbac.PermPostsRead); err != nil {
		return nil, err
	}
	return u.load(ctx, actor, id)
}

// Update applies a partial update. Moving a post to scheduled requires a
// publish time in the future.
func (u *PostUseCase) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch domain.PostPatch) (*domain.Post, error) {
	if err := u.requireWrite(actor); err != nil {
		return nil, err
	}
	post, err := u.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	if patch.Content != nil {
		content, err := checkContent(*patch.Content)
		if err != nil {
			return nil, err
		}
		post.Content = content
		changed = append(changed, "content")
	}
	if patch.Tone != nil {
		post.Tone = *patch.Tone
		changed = append(changed, "tone")
	}
	if patch.TemplateID != nil {
		post.TemplateID = *patch.TemplateID
		changed = append(changed, "template_id")
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, domain.Validation("unknown status %q", *patch.Status)
		}
		post.Status = *patch.Status
		changed = append(changed, "status")
	}
	if patch.ScheduledAt != nil {
		at := patch.ScheduledAt.UTC()
		post.ScheduledAt = &at
		changed = append(changed, "scheduled_at")
	}
	if len(changed) == 0 {
		return nil, domain.Validation("no fields to update")
	}
	if err := studio.ValidateSelection(post.Tone, post.TemplateID); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	if post.Status == domain.PostScheduled && (patch.Status != nil || patch.ScheduledAt != nil) {
		if post.ScheduledAt == nil || !post.ScheduledAt.After(now) {
			return nil, domain.Validation("scheduled_at must be in the future")
		}
	}
	post.UpdatedAt = now
	if err := u.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionPostUpdated,
		EntityType: "post",
		EntityID:   post.ID.String(),
		Metadata:   map[string]any{"fields": changed},
	})
	return post, nil
}

func (u *PostUseCase) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if err := u.requireWrite(actor); err != nil {
		return err
	}
	if _, err := u.load(ctx, actor, id); err != nil {
		return err
	}
	if err := u.repo.DeletePost(ctx, actor.WorkspaceID, id); err != nil {
		return err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionPostDeleted,
		EntityType: "post",
		EntityID:   id.String(),
	})
	return nil
}

// CreateVariant rewrites the post content with the given tone and template
// and stores the result as a variant.
func (u *PostUseCase) CreateVariant(ctx context.Context, actor domain.Actor, postID uuid.UUID, tone, templateID string) (*domain.Variant, error) {
	if err := u.requireWrite(actor); err != nil {
		return nil, err
	}
	if tone == "" && templateID == "" {
		return nil, domain.Validation("tone or template_id is required")
	}
	post, err := u.load(ctx, actor, postID)
	if err != nil {
		return nil, err
	}
	content, err := studio.Rewrite(studio.RewriteRequest{
		Content:    post.Content,
		Tone:       tone,
		TemplateID: templateID,
		Platform:   post.Platform,
	})
	if err != nil {
		return nil, err
	}
	variant := &domain.Variant{
		ID:         uuid.New(),
		PostID:     post.ID,
		Content:    content,
		Tone:       tone,
		TemplateID: templateID,
		CreatedAt:  u.now().UTC(),
	}
	if err := u.repo.CreateVariant(ctx, variant); err != nil {
		return nil, err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionVariantCreated,
		EntityType: "post",
		EntityID:   post.ID.String(),
		Metadata:   map[string]any{"variant_id": variant.ID, "tone": tone, "template_id": templateID},
	})
	return variant, nil
}

func (u *PostUseCase) DeleteVariant(ctx context.Context, actor domain.Actor, postID, variantID uuid.UUID) error {
	if err := u.requireWrite(actor); err != nil {
		return err
	}
	if _, err := u.load(ctx, actor, postID); err != nil {
		return err
	}
	if err := u.repo.DeleteVariant(ctx, postID, variantID); err != nil {
		return err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionVariantDeleted,
		EntityType: "post",
		EntityID:   postID.String(),
		Metadata:   map[string]any{"variant_id": variantID},
	})
	return nil
}

// Bulk applies action to up to domain.MaxBulkIDs posts and returns how
// many were affected. Posts the actor cannot see are skipped.
func (u *PostUseCase) Bulk(ctx context.Context, actor domain.Actor, action domain.BulkAction, ids []uuid.UUID) (int64, error) {
	if err := u.requireWrite(actor); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, domain.Validation("ids must not be empty")
	}
	if len(ids) > domain.MaxBulkIDs {
		return 0, domain.Validation("at most %d ids are allowed", domain.MaxBulkIDs)
	}
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	ids = slices.Compact(ids)

	var (
		affected int64
		err      error
	)
	switch action {
	case domain.BulkApprove:
		affected, err = u.repo.BulkSetStatus(ctx, actor.WorkspaceID, actor.PermittedClients(), ids, domain.PostApproved)
	case domain.BulkArchive:
		affected, err = u.repo.BulkSetStatus(ctx, actor.WorkspaceID, actor.PermittedClients(), ids, domain.PostArchived)
	case domain.BulkDelete:
		affected, err = u.repo.BulkDelete(ctx, actor.WorkspaceID, actor.PermittedClients(), ids)
	default:
		return 0, domain.Validation("unknown bulk action %q", action)
	}
	if err != nil {
		return 0, err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionPostsBulk,
		EntityType: "post",
		Metadata:   map[string]any{"action": action, "requested": len(ids), "affected": affected},
	})
	return affected, nil
}

func (u *PostUseCase) requireWrite(actor domain.Actor) error {
	if err := rbac.Require(actor, rbac.PermPostsWrite); err != nil {
		return err
	}
	if !actor.HasWorkspace() {
		return domain.ErrForbidden.WithDetail("reason", "no workspace")
	}
	return nil
}

// load returns a post the actor may see, or domain.ErrPostNotFound.
func (u *PostUseCase) load(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Post, error) {
	if !actor.HasWorkspace() {
		return nil, domain.ErrPostNotFound
	}
	post, err := u.repo.GetPost(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeClient(post.ClientID) {
		return nil, domain.ErrPostNotFound
	}
	if post.Variants == nil {
		post.Variants = []domain.Variant{}
	}
	return post, nil
}

func checkContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", domain.Validation("content is required")
	}
	if utf8.RuneCountInString(content) > domain.MaxPostLength {
		return "", domain.Validation("content must be at most %d characters", domain.MaxPostLength)
	}
	return content, nil
}
