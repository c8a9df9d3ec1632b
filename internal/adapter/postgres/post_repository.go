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

// PostRepository implements port.PostRepository using pgxpool.
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a new repository instance.
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, workspace_id, client_id, author_id, platform, content, tone, template_id,
status, scheduled_at, created_at, updated_at`

func (r *PostRepository) CreatePost(ctx context.Context, p *domain.Post) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO posts (`+postColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.WorkspaceID, p.ClientID, p.AuthorID, string(p.Platform), p.Content, p.Tone, p.TemplateID,
		string(p.Status), p.ScheduledAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isClientViolation(err) {
			return domain.ErrUnknownClient
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) ClientExists(ctx context.Context, workspaceID, clientID uuid.UUID) (bool, error) {
	return clientExists(ctx, r.pool, workspaceID, clientID)
}

// ListPosts returns posts without their variants, most recently updated
// first.
func (r *PostRepository) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+postColumns+`
FROM posts
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND ($3::text = '' OR status = $3::text)
  AND ($4::text = '' OR platform = $4::text)
ORDER BY updated_at DESC, id
LIMIT $5`,
		filter.WorkspaceID, filter.ClientIDs, string(filter.Status), string(filter.Platform), domain.NormalizeLimit(filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Post, error) {
		return scanPost(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a post together with its variants.
func (r *PostRepository) GetPost(ctx context.Context, workspaceID, id uuid.UUID) (*domain.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE workspace_id = $1 AND id = $2`, workspaceID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT id, post_id, content, tone, template_id, created_at
FROM post_variants WHERE post_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	p.Variants, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Variant, error) {
		var v domain.Variant
		err := row.Scan(&v.ID, &v.PostID, &v.Content, &v.Tone, &v.TemplateID, &v.CreatedAt)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan variants: %w", err)
	}
	return &p, nil
}

// UpdatePost writes the mutable fields of a post.
func (r *PostRepository) UpdatePost(ctx context.Context, p *domain.Post) error {
	tag, err := r.pool.Exec(ctx, `UPDATE posts
SET content = $3, tone = $4, template_id = $5, status = $6, scheduled_at = $7, updated_at = $8
WHERE workspace_id = $1 AND id = $2`,
		p.WorkspaceID, p.ID, p.Content, p.Tone, p.TemplateID, string(p.Status), p.ScheduledAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, workspaceID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) CreateVariant(ctx context.Context, v *domain.Variant) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO post_variants (id, post_id, content, tone, template_id, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`, v.ID, v.PostID, v.Content, v.Tone, v.TemplateID, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

func (r *PostRepository) DeleteVariant(ctx context.Context, postID, variantID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM post_variants WHERE post_id = $1 AND id = $2`, postID, variantID)
	if err != nil {
		return fmt.Errorf("delete variant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrVariantNotFound
	}
	return nil
}

// BulkSetStatus updates the listed posts visible under the client filter.
func (r *PostRepository) BulkSetStatus(ctx context.Context, workspaceID uuid.UUID, clientIDs, ids []uuid.UUID, status domain.PostStatus) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE posts SET status = $4, updated_at = now()
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND id = ANY($3::uuid[])`, workspaceID, clientIDs, ids, string(status))
	if err != nil {
		return 0, fmt.Errorf("bulk update posts: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkDelete removes the listed posts visible under the client filter.
func (r *PostRepository) BulkDelete(ctx context.Context, workspaceID uuid.UUID, clientIDs, ids []uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts
WHERE workspace_id = $1
  AND ($2::uuid[] IS NULL OR client_id IS NULL OR client_id = ANY($2::uuid[]))
  AND id = ANY($3::uuid[])`, workspaceID, clientIDs, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete posts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(&p.ID, &p.WorkspaceID, &p.ClientID, &p.AuthorID, &p.Platform, &p.Content, &p.Tone, &p.TemplateID,
		&p.Status, &p.ScheduledAt, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
