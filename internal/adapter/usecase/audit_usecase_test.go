package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port/mocks"
)

func TestAuditRecord(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	svc := newAudit(repo)
	actor := actorWith(domain.RoleAdmin)
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	repo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(_ context.Context, e *domain.AuditEntry) {
			assert.NotEqual(t, uuid.Nil, e.ID)
			assert.Equal(t, testWorkspace, e.WorkspaceID)
			assert.Equal(t, actor.UserID, e.ActorID)
			assert.Equal(t, domain.RoleAdmin, e.ActorRole)
			assert.Equal(t, domain.ScopeWorkspace, e.Scope)
			assert.Equal(t, "req-42", e.RequestID)
			assert.Equal(t, fixedNow, e.CreatedAt)
			assert.JSONEq(t, `{"status":"approved"}`, string(e.Metadata))
		}).
		Return(nil)

	err := svc.Record(ctx, actor, domain.AuditInput{
		Action:     domain.ActionPostUpdated,
		EntityType: "post",
		EntityID:   "p-1",
		Metadata:   map[string]string{"status": "approved"},
	})
	require.NoError(t, err)
}

func TestAuditRecordBadMetadata(t *testing.T) {
	svc := newAudit(mocks.NewMockAuditRepository(t))
	err := svc.Record(context.Background(), actorWith(domain.RoleAdmin), domain.AuditInput{
		Action:   domain.ActionPostUpdated,
		Metadata: map[string]any{"ch": make(chan int)},
	})
	assert.Error(t, err)
}

func TestAuditList(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	svc := newAudit(repo)
	ctx := context.Background()

	repo.EXPECT().
		List(mock.Anything, domain.AuditFilter{WorkspaceID: testWorkspace, Action: domain.ActionPostsBulk, Limit: domain.MaxListLimit}).
		Return([]domain.AuditEntry{{Action: domain.ActionPostsBulk}}, nil)

	entries, err := svc.List(ctx, actorWith(domain.RoleAdmin), domain.AuditFilter{
		WorkspaceID: uuid.New(),
		Action:      domain.ActionPostsBulk,
		Limit:       1000,
	})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.List(ctx, actorWith(domain.RoleOperator), domain.AuditFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	noWorkspace := actorWith(domain.RoleOwner)
	noWorkspace.WorkspaceID = uuid.Nil
	entries, err = svc.List(ctx, noWorkspace, domain.AuditFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordHelperSwallowsErrors(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	assert.NotPanics(t, func() {
		record(context.Background(), newAudit(repo), zap.NewNop(), actorWith(domain.RoleOwner), domain.AuditInput{Action: "x"})
	})
}
