package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port"
)

// AuthUseCase resolves actors from bearer tokens and revokes sessions.
type AuthUseCase struct {
	tokens   port.TokenParser
	sessions port.SessionStore
	audit    port.AuditRecorder
	logger   *zap.Logger
}

func NewAuthUseCase(tokens port.TokenParser, sessions port.SessionStore, audit port.AuditRecorder, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{tokens: tokens, sessions: sessions, audit: audit, logger: logger}
}

// Authenticate parses raw and rejects revoked tokens. Session store
// failures are returned as they are so the caller answers 500, not 401.
func (u *AuthUseCase) Authenticate(ctx context.Context, raw string) (domain.Actor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	actor, err := u.tokens.Parse(raw)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnauthorized {
			return domain.Actor{}, err
		}
		return domain.Actor{}, domain.NewError(domain.KindUnauthorized, domain.ErrUnauthorized.Message, err)
	}
	revoked, err := u.sessions.IsRevoked(ctx, actor.TokenID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return domain.Actor{}, domain.NewError(domain.KindUnauthorized, domain.ErrUnauthorized.Message, errors.New("token revoked"))
	}
	return actor, nil
}

// Logout revokes the actor's token until it expires.
func (u *AuthUseCase) Logout(ctx context.Context, actor domain.Actor) error {
	if actor.TokenID == "" {
		return domain.ErrUnauthorized
	}
	if err := u.sessions.Revoke(ctx, actor.TokenID, actor.TokenExpiry); err != nil {
		return err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionSessionRevoked,
		EntityType: "session",
		EntityID:   actor.TokenID,
	})
	return nil
}
