package gitstore

import (
	"context"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adops/internal/core/domain"
)

func content(summary string) domain.TrustContent {
	return domain.TrustContent{
		Title:   "Trust center",
		Summary: summary,
		Sections: []domain.TrustSection{
			{Key: "hosting", Title: "Hosting", Body: "Hosted in the EU."},
		},
	}
}

func TestPublishAndRead(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Active(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveVersion)

	v1, err := store.Publish(ctx, content("first"), "Initial", "Baseline documentation.", "Ada Owner")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Number)
	assert.Equal(t, "Initial", v1.Name)
	assert.Equal(t, "Baseline documentation.", v1.Changelog)
	assert.Equal(t, "Ada Owner", v1.Author)
	assert.Len(t, v1.Hash, 40)
	assert.False(t, v1.Active)
	require.NotNil(t, v1.Content)
	assert.Equal(t, "first", v1.Content.Summary)

	v2, err := store.Publish(ctx, content("second"), "Update", "", "Ada Owner")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Number)

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content.Summary)
	assert.Equal(t, v1.Hash, got.Hash)

	_, err = store.Get(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)

	versions, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 1, versions[0].Number)
	assert.Equal(t, 2, versions[1].Number)
	assert.Nil(t, versions[0].Content)

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	commit, err := repo.CommitObject(plumbing.NewHash(v1.Hash))
	require.NoError(t, err)
	assert.Equal(t, "Initial\n\nBaseline documentation.", commit.Message)
	tag, err := repo.Tag("v2")
	require.NoError(t, err)
	assert.Equal(t, v2.Hash, tag.Hash().String())
}

func TestActivateMovesActiveBranch(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Publish(ctx, content("first"), "v1", "", "owner")
	require.NoError(t, err)
	_, err = store.Publish(ctx, content("second"), "v2", "", "owner")
	require.NoError(t, err)

	require.NoError(t, store.Activate(ctx, 2))
	active, err := store.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, active.Number)
	assert.True(t, active.Active)
	assert.Equal(t, "second", active.Content.Summary)

	require.NoError(t, store.Activate(ctx, 1))
	versions, err := store.List(ctx)
	require.NoError(t, err)
	assert.True(t, versions[0].Active)
	assert.False(t, versions[1].Active)

	assert.ErrorIs(t, store.Activate(ctx, 3), domain.ErrVersionNotFound)
}

func TestReopenKeepsVersions(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = store.Publish(ctx, content("first"), "v1", "", "owner")
	require.NoError(t, err)
	require.NoError(t, store.Activate(ctx, 1))

	reopened, err := Open(dir)
	require.NoError(t, err)
	active, err := reopened.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active.Number)

	v2, err := reopened.Publish(ctx, content("second"), "v2", "", "owner")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Number)
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "Ada.Owner", sanitizeEmail("Ada Owner"))
	assert.Equal(t, "user", sanitizeEmail("@@@"))
}
