package usecase

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/rbac"
)

// TrustUseCase manages the versions of the public trust documentation.
// Publish, activate and rollback are serialised so that the active version
// cannot change between the precondition check and the switch.
type TrustUseCase struct {
	mu     sync.Mutex
	store  port.TrustStore
	audit  port.AuditRecorder
	logger *zap.Logger
}

func NewTrustUseCase(store port.TrustStore, audit port.AuditRecorder, logger *zap.Logger) *TrustUseCase {
	return &TrustUseCase{store: store, audit: audit, logger: logger}
}

// Active returns the published documentation.
func (u *TrustUseCase) Active(ctx context.Context) (domain.TrustVersion, error) {
	return u.store.Active(ctx)
}

func (u *TrustUseCase) Versions(ctx context.Context, actor domain.Actor) ([]domain.TrustVersion, error) {
	if err := rbac.Require(actor, rbac.PermTrustRead); err != nil {
		return nil, err
	}
	return u.store.List(ctx)
}

func (u *TrustUseCase) Version(ctx context.Context, actor domain.Actor, number int) (domain.TrustVersion, error) {
	if err := rbac.Require(actor, rbac.PermTrustRead); err != nil {
		return domain.TrustVersion{}, err
	}
	return u.store.Get(ctx, number)
}

// Diff compares the content of two versions.
func (u *TrustUseCase) Diff(ctx context.Context, actor domain.Actor, from, to int) ([]domain.SectionChange, error) {
	if err := rbac.Require(actor, rbac.PermTrustRead); err != nil {
		return nil, err
	}
	a, err := u.store.Get(ctx, from)
	if err != nil {
		return nil, err
	}
	b, err := u.store.Get(ctx, to)
	if err != nil {
		return nil, err
	}
	return domain.DiffTrustContent(contentOf(a), contentOf(b)), nil
}

// Changelog returns every version newest first.
func (u *TrustUseCase) Changelog(ctx context.Context, actor domain.Actor) ([]domain.TrustVersion, error) {
	versions, err := u.Versions(ctx, actor)
	if err != nil {
		return nil, err
	}
	slices.Reverse(versions)
	return versions, nil
}

// Publish stores a new version. The very first version, or any version
// published with Activate set, becomes active right away.
func (u *TrustUseCase) Publish(ctx context.Context, actor domain.Actor, in domain.TrustPublish) (domain.TrustVersion, error) {
	if err := rbac.Require(actor, rbac.PermTrustPublish); err != nil {
		return domain.TrustVersion{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.TrustVersion{}, domain.Validation("name is required")
	}
	if err := in.Content.Validate(); err != nil {
		return domain.TrustVersion{}, err
	}
	if in.Activate {
		if err := rbac.Require(actor, rbac.PermTrustActivate); err != nil {
			return domain.TrustVersion{}, err
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	_, err := u.store.Active(ctx)
	first := errors.Is(err, domain.ErrNoActiveVersion)
	if err != nil && !first {
		return domain.TrustVersion{}, err
	}

	version, err := u.store.Publish(ctx, in.Content, in.Name, in.Changelog, author(actor))
	if err != nil {
		return domain.TrustVersion{}, err
	}
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionTrustPublished,
		EntityType: "trust_version",
		EntityID:   versionID(version.Number),
		Scope:      domain.ScopePlatform,
		Metadata:   map[string]any{"name": version.Name, "hash": version.Hash},
	})

	if first || in.Activate {
		if err := u.store.Activate(ctx, version.Number); err != nil {
			return domain.TrustVersion{}, err
		}
		version.Active = true
		record(ctx, u.audit, u.logger, actor, domain.AuditInput{
			Action:     domain.ActionTrustActivated,
			EntityType: "trust_version",
			EntityID:   versionID(version.Number),
			Scope:      domain.ScopePlatform,
			Metadata:   map[string]any{"automatic": first},
		})
	}
	return version, nil
}

// Activate makes number the active version. Activating the version that
// is already active fails with domain.ErrAlreadyActive.
func (u *TrustUseCase) Activate(ctx context.Context, actor domain.Actor, number int) (domain.TrustVersion, error) {
	if err := rbac.Require(actor, rbac.PermTrustActivate); err != nil {
		return domain.TrustVersion{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	target, err := u.store.Get(ctx, number)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	if target.Active {
		return domain.TrustVersion{}, domain.ErrAlreadyActive.WithDetail("version", number)
	}
	previous, err := u.store.Active(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoActiveVersion) {
		return domain.TrustVersion{}, err
	}
	if err := u.store.Activate(ctx, number); err != nil {
		return domain.TrustVersion{}, err
	}
	target.Active = true
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionTrustActivated,
		EntityType: "trust_version",
		EntityID:   versionID(number),
		Scope:      domain.ScopePlatform,
		Metadata:   map[string]any{"previous": previous.Number},
	})
	return target, nil
}

// Rollback re-activates an earlier version. Without to, the highest
// version below the active one is used. A reason is mandatory.
func (u *TrustUseCase) Rollback(ctx context.Context, actor domain.Actor, to *int, reason string) (domain.TrustVersion, error) {
	if err := rbac.Require(actor, rbac.PermTrustActivate); err != nil {
		return domain.TrustVersion{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.TrustVersion{}, domain.Validation("reason is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	active, err := u.store.Active(ctx)
	if errors.Is(err, domain.ErrNoActiveVersion) {
		return domain.TrustVersion{}, domain.ErrNoRollbackTarget
	}
	if err != nil {
		return domain.TrustVersion{}, err
	}

	var target int
	if to != nil {
		if *to >= active.Number {
			return domain.TrustVersion{}, domain.ErrNoRollbackTarget.WithDetail("active", active.Number)
		}
		target = *to
	} else {
		versions, err := u.store.List(ctx)
		if err != nil {
			return domain.TrustVersion{}, err
		}
		for _, v := range versions {
			if v.Number < active.Number && v.Number > target {
				target = v.Number
			}
		}
		if target == 0 {
			return domain.TrustVersion{}, domain.ErrNoRollbackTarget.WithDetail("active", active.Number)
		}
	}

	version, err := u.store.Get(ctx, target)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	if err := u.store.Activate(ctx, target); err != nil {
		return domain.TrustVersion{}, err
	}
	version.Active = true
	record(ctx, u.audit, u.logger, actor, domain.AuditInput{
		Action:     domain.ActionTrustRolledBack,
		EntityType: "trust_version",
		EntityID:   versionID(target),
		Scope:      domain.ScopePlatform,
		Reason:     reason,
		Metadata:   map[string]any{"from": active.Number, "to": target},
	})
	return version, nil
}

func contentOf(v domain.TrustVersion) domain.TrustContent {
	if v.Content == nil {
		return domain.TrustContent{}
	}
	return *v.Content
}

func author(actor domain.Actor) string {
	if actor.Email != "" {
		return actor.Email
	}
	return actor.UserID.String()
}

func versionID(number int) string {
	return "v" + strconv.Itoa(number)
}
