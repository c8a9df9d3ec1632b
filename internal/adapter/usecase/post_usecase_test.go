package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port/mocks"
)

func newPosts(t *testing.T) (*PostUseCase, *mocks.MockPostRepository, *mocks.MockAuditRepository) {
	repo := mocks.NewMockPostRepository(t)
	audit := mocks.NewMockAuditRepository(t)
	svc := NewPostUseCase(repo, newAudit(audit), zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, audit
}

func expectAudit(audit *mocks.MockAuditRepository, action string) {
	audit.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool { return e.Action == action })).
		Return(nil).
		Once()
}

func storedPost(client *uuid.UUID) *domain.Post {
	return &domain.Post{
		ID:          uuid.New(),
		WorkspaceID: testWorkspace,
		ClientID:    client,
		Platform:    domain.PlatformMeta,
		Content:     "we are live. do not miss it",
		Status:      domain.PostDraft,
	}
}

func TestCreatePostDraft(t *testing.T) {
	svc, repo, audit := newPosts(t)
	actor := actorWith(domain.RoleOperator)

	repo.EXPECT().
		CreatePost(mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
			return p.Status == domain.PostDraft && p.Content == "Spring sale" && p.AuthorID == actor.UserID && p.WorkspaceID == testWorkspace
		})).
		Return(nil)
	expectAudit(audit, domain.ActionPostCreated)

	post, err := svc.Create(context.Background(), actor, domain.PostInput{
		Platform: domain.PlatformMeta,
		Content:  "  Spring sale \n",
		Tone:     "bold",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostDraft, post.Status)
	assert.NotNil(t, post.Variants)
	assert.Equal(t, fixedNow, post.CreatedAt)
}

func TestCreatePostScheduled(t *testing.T) {
	svc, repo, audit := newPosts(t)
	at := fixedNow.Add(24 * time.Hour)

	repo.EXPECT().CreatePost(mock.Anything, mock.Anything).Return(nil)
	expectAudit(audit, domain.ActionPostCreated)

	post, err := svc.Create(context.Background(), actorWith(domain.RoleAdmin), domain.PostInput{
		Platform: domain.PlatformLinkedIn, Content: "Webinar on Friday", ScheduledAt: &at,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PostScheduled, post.Status)
	assert.Equal(t, at, *post.ScheduledAt)
}

func TestCreatePostValidation(t *testing.T) {
	svc, _, _ := newPosts(t)
	ctx := context.Background()
	past := fixedNow.Add(-time.Minute)
	other := clientB

	cases := []struct {
		name  string
		actor domain.Actor
		in    domain.PostInput
		kind  domain.ErrorKind
	}{
		{"viewer", actorWith(domain.RoleViewer), domain.PostInput{Platform: domain.PlatformMeta, Content: "x"}, domain.KindForbidden},
		{"blank content", actorWith(domain.RoleOperator), domain.PostInput{Platform: domain.PlatformMeta, Content: "   "}, domain.KindValidation},
		{"too long", actorWith(domain.RoleOperator), domain.PostInput{Platform: domain.PlatformMeta, Content: strings.Repeat("a", domain.MaxPostLength+1)}, domain.KindValidation},
		{"platform", actorWith(domain.RoleOperator), domain.PostInput{Platform: "myspace", Content: "x"}, domain.KindValidation},
		{"tone", actorWith(domain.RoleOperator), domain.PostInput{Platform: domain.PlatformMeta, Content: "x", Tone: "sarcastic"}, domain.KindValidation},
		{"template", actorWith(domain.RoleOperator), domain.PostInput{Platform: domain.PlatformMeta, Content: "x", TemplateID: "nope"}, domain.KindValidation},
		{"past schedule", actorWith(domain.RoleOperator), domain.PostInput{Platform: domain.PlatformMeta, Content: "x", ScheduledAt: &past}, domain.KindValidation},
		{"client", actorWith(domain.RoleOperator, clientA), domain.PostInput{ClientID: &other, Platform: domain.PlatformMeta, Content: "x"}, domain.KindForbidden},
		{"no workspace", domain.Actor{UserID: uuid.New(), Role: domain.RoleOwner}, domain.PostInput{Platform: domain.PlatformMeta, Content: "x"}, domain.KindForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.actor, tc.in)
			require.Error(t, err)
			assert.Equal(t, tc.kind, domain.KindOf(err))
		})
	}
}

func TestCreatePostClientLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown client", func(t *testing.T) {
		svc, repo, _ := newPosts(t)
		stranger := uuid.New()
		repo.EXPECT().ClientExists(mock.Anything, testWorkspace, stranger).Return(false, nil)

		_, err := svc.Create(ctx, actorWith(domain.RoleOwner), domain.PostInput{ClientID: &stranger, Platform: domain.PlatformMeta, Content: "x"})
		require.ErrorIs(t, err, domain.ErrUnknownClient)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("known client", func(t *testing.T) {
		svc, repo, audit := newPosts(t)
		client := clientA
		repo.EXPECT().ClientExists(mock.Anything, testWorkspace, clientA).Return(true, nil)
		repo.EXPECT().
			CreatePost(mock.Anything, mock.MatchedBy(func(p *domain.Post) bool { return p.ClientID != nil && *p.ClientID == clientA })).
			Return(nil)
		expectAudit(audit, domain.ActionPostCreated)

		_, err := svc.Create(ctx, actorWith(domain.RoleOperator, clientA), domain.PostInput{ClientID: &client, Platform: domain.PlatformMeta, Content: "x"})
		require.NoError(t, err)
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, repo, _ := newPosts(t)
		client := clientA
		repo.EXPECT().ClientExists(mock.Anything, testWorkspace, clientA).Return(false, errors.New("conn reset"))

		_, err := svc.Create(ctx, actorWith(domain.RoleAdmin), domain.PostInput{ClientID: &client, Platform: domain.PlatformMeta, Content: "x"})
		require.Error(t, err)
		assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	})
}

func TestCreatePostAcceptsMaxLength(t *testing.T) {
	svc, repo, audit := newPosts(t)
	repo.EXPECT().CreatePost(mock.Anything, mock.Anything).Return(nil)
	expectAudit(audit, domain.ActionPostCreated)

	post, err := svc.Create(context.Background(), actorWith(domain.RoleOperator), domain.PostInput{
		Platform: domain.PlatformMeta, Content: strings.Repeat("é", domain.MaxPostLength),
	})
	require.NoError(t, err)
	assert.Len(t, []rune(post.Content), domain.MaxPostLength)
}

func TestListPostsScoped(t *testing.T) {
	svc, repo, _ := newPosts(t)

	repo.EXPECT().
		ListPosts(mock.Anything, mock.MatchedBy(func(f domain.PostFilter) bool {
			return f.WorkspaceID == testWorkspace && len(f.ClientIDs) == 1 && f.ClientIDs[0] == clientA && f.Limit == 50 && f.Status == domain.PostDraft
		})).
		Return([]domain.Post{{ID: uuid.New()}}, nil)

	posts, err := svc.List(context.Background(), actorWith(domain.RoleViewer, clientA), domain.PostFilter{Status: domain.PostDraft})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.NotNil(t, posts[0].Variants)
}

func TestGetPostHidesOtherClients(t *testing.T) {
	svc, repo, _ := newPosts(t)
	post := storedPost(&clientB)
	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)

	_, err := svc.Get(context.Background(), actorWith(domain.RoleViewer, clientA), post.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestUpdatePost(t *testing.T) {
	svc, repo, audit := newPosts(t)
	post := storedPost(nil)
	content := "  Fresh copy "
	tone := "witty"

	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)
	repo.EXPECT().
		UpdatePost(mock.Anything, mock.MatchedBy(func(p *domain.Post) bool {
			return p.Content == "Fresh copy" && p.Tone == "witty" && p.UpdatedAt.Equal(fixedNow)
		})).
		Return(nil)
	audit.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
			return e.Action == domain.ActionPostUpdated && string(e.Metadata) == `{"fields":["content","tone"]}`
		})).
		Return(nil)

	updated, err := svc.Update(context.Background(), actorWith(domain.RoleOperator), post.ID, domain.PostPatch{Content: &content, Tone: &tone})
	require.NoError(t, err)
	assert.Equal(t, "Fresh copy", updated.Content)
}

func TestUpdatePostRejects(t *testing.T) {
	svc, repo, _ := newPosts(t)
	ctx := context.Background()
	actor := actorWith(domain.RoleOperator)
	post := storedPost(nil)
	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)

	_, err := svc.Update(ctx, actor, post.ID, domain.PostPatch{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	scheduled := domain.PostScheduled
	_, err = svc.Update(ctx, actor, post.ID, domain.PostPatch{Status: &scheduled})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled_at")

	bogus := domain.PostStatus("live")
	_, err = svc.Update(ctx, actor, post.ID, domain.PostPatch{Status: &bogus})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestDeletePost(t *testing.T) {
	svc, repo, audit := newPosts(t)
	post := storedPost(nil)
	missing := uuid.New()

	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)
	repo.EXPECT().DeletePost(mock.Anything, testWorkspace, post.ID).Return(nil)
	expectAudit(audit, domain.ActionPostDeleted)
	require.NoError(t, svc.Delete(context.Background(), actorWith(domain.RoleOperator), post.ID))

	repo.EXPECT().GetPost(mock.Anything, testWorkspace, missing).Return(nil, domain.ErrPostNotFound)
	err := svc.Delete(context.Background(), actorWith(domain.RoleOperator), missing)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestCreateVariantRewritesContent(t *testing.T) {
	svc, repo, audit := newPosts(t)
	post := storedPost(nil)

	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)
	repo.EXPECT().CreateVariant(mock.Anything, mock.AnythingOfType("*domain.Variant")).Return(nil)
	expectAudit(audit, domain.ActionVariantCreated)

	variant, err := svc.CreateVariant(context.Background(), actorWith(domain.RoleOperator), post.ID, "casual", "tip")
	require.NoError(t, err)
	assert.Equal(t, "💡 Tip: we're live. don't miss it", variant.Content)
	assert.Equal(t, post.ID, variant.PostID)

	_, err = svc.CreateVariant(context.Background(), actorWith(domain.RoleOperator), post.ID, "", "")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestDeleteVariantNotFound(t *testing.T) {
	svc, repo, _ := newPosts(t)
	post := storedPost(nil)
	variantID := uuid.New()

	repo.EXPECT().GetPost(mock.Anything, testWorkspace, post.ID).Return(post, nil)
	repo.EXPECT().DeleteVariant(mock.Anything, post.ID, variantID).Return(domain.ErrVariantNotFound)

	err := svc.DeleteVariant(context.Background(), actorWith(domain.RoleOperator), post.ID, variantID)
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}

func TestBulk(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	t.Run("dedupes ids", func(t *testing.T) {
		svc, repo, audit := newPosts(t)
		repo.EXPECT().
			BulkSetStatus(mock.Anything, testWorkspace, []uuid.UUID{clientA}, mock.MatchedBy(func(ids []uuid.UUID) bool { return len(ids) == 2 }), domain.PostApproved).
			Return(int64(2), nil)
		expectAudit(audit, domain.ActionPostsBulk)

		n, err := svc.Bulk(ctx, actorWith(domain.RoleOperator, clientA), domain.BulkApprove, []uuid.UUID{a, b, a})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("archive and delete", func(t *testing.T) {
		svc, repo, audit := newPosts(t)
		repo.EXPECT().BulkSetStatus(mock.Anything, testWorkspace, mock.Anything, mock.Anything, domain.PostArchived).Return(int64(1), nil)
		repo.EXPECT().BulkDelete(mock.Anything, testWorkspace, mock.Anything, mock.Anything).Return(int64(0), nil)
		audit.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Twice()

		n, err := svc.Bulk(ctx, actorWith(domain.RoleOwner), domain.BulkArchive, []uuid.UUID{a})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = svc.Bulk(ctx, actorWith(domain.RoleOwner), domain.BulkDelete, []uuid.UUID{b})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("rejects", func(t *testing.T) {
		svc, _, _ := newPosts(t)
		actor := actorWith(domain.RoleOperator)

		_, err := svc.Bulk(ctx, actor, domain.BulkApprove, nil)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))

		tooMany := make([]uuid.UUID, domain.MaxBulkIDs+1)
		for i := range tooMany {
			tooMany[i] = uuid.New()
		}
		_, err = svc.Bulk(ctx, actor, domain.BulkApprove, tooMany)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))

		_, err = svc.Bulk(ctx, actor, "publish", []uuid.UUID{a})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))

		_, err = svc.Bulk(ctx, actorWith(domain.RoleViewer), domain.BulkDelete, []uuid.UUID{a})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _ := newPosts(t)
		repo.EXPECT().BulkDelete(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("deadlock"))

		_, err := svc.Bulk(ctx, actorWith(domain.RoleOwner), domain.BulkDelete, []uuid.UUID{a})
		assert.EqualError(t, err, "deadlock")
	})
}
