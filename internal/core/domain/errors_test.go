package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("get post: %w", ErrPostNotFound)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NotErrorIs(t, err, ErrCampaignNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestWithDetailCopies(t *testing.T) {
	withDetail := ErrForbidden.WithDetail("permission", "audit:read")
	assert.Nil(t, ErrForbidden.Details)
	assert.Equal(t, "audit:read", withDetail.Details["permission"])
	assert.ErrorIs(t, withDetail, ErrForbidden)
}

func TestActorClientScope(t *testing.T) {
	client := uuidFromByte(1)
	other := uuidFromByte(2)

	viewer := Actor{Role: RoleViewer, ClientIDs: nil}
	assert.Equal(t, 0, len(viewer.PermittedClients()))
	assert.NotNil(t, viewer.PermittedClients())
	assert.True(t, viewer.CanSeeClient(nil))
	assert.False(t, viewer.CanSeeClient(&client))

	operator := Actor{Role: RoleOperator, ClientIDs: []uuid.UUID{client}}
	assert.True(t, operator.CanSeeClient(&client))
	assert.False(t, operator.CanSeeClient(&other))

	admin := Actor{Role: RoleAdmin}
	assert.Nil(t, admin.PermittedClients())
	assert.True(t, admin.CanSeeClient(&other))
}

func uuidFromByte(b byte) uuid.UUID {
	var id uuid.UUID
	id[15] = b
	return id
}
