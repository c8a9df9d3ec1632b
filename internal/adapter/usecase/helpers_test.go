package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port/mocks"
)

var (
	testWorkspace = uuid.MustParse("6f1c1f4e-8a51-4c1b-9a4b-3d8f0f7f2a01")
	clientA       = uuid.MustParse("0b7d5c1e-2f3a-4e8b-a1c9-5d6e7f8a9b01")
	clientB       = uuid.MustParse("0b7d5c1e-2f3a-4e8b-a1c9-5d6e7f8a9b02")
	fixedNow      = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
)

func actorWith(role domain.Role, clients ...uuid.UUID) domain.Actor {
	return domain.Actor{
		UserID:      uuid.New(),
		Email:       string(role) + "@example.com",
		Role:        role,
		WorkspaceID: testWorkspace,
		ClientIDs:   clients,
		TokenID:     "jti-" + string(role),
		TokenExpiry: time.Now().Add(time.Hour),
	}
}

func newAudit(repo *mocks.MockAuditRepository) *AuditUseCase {
	a := NewAuditUseCase(repo, zap.NewNop())
	a.now = func() time.Time { return fixedNow }
	return a
}
