package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adops/internal/core/domain"
	"adops/internal/core/port"
	"adops/internal/core/studio"
)

// StudioUseCase persists the studio preferences of each user.
type StudioUseCase struct {
	store port.PreferenceStore
	now   func() time.Time
}

func NewStudioUseCase(store port.PreferenceStore) *StudioUseCase {
	return &StudioUseCase{store: store, now: time.Now}
}

// Preferences returns the stored state, or the default state for a user
// who never changed anything.
func (u *StudioUseCase) Preferences(ctx context.Context, actor domain.Actor) (studio.Preferences, error) {
	raw, found, err := u.store.Load(ctx, actor.WorkspaceID, actor.UserID)
	if err != nil {
		return studio.Preferences{}, err
	}
	return decodePreferences(raw, found)
}

func (u *StudioUseCase) ApproveMessage(ctx context.Context, actor domain.Actor, message string) (studio.Preferences, error) {
	return u.update(ctx, actor, func(p studio.Preferences) (studio.Preferences, error) {
		return p.Approve(message, u.now())
	})
}

// ClearMessage fails with domain.ErrInvalidTransition unless a message is
// approved.
func (u *StudioUseCase) ClearMessage(ctx context.Context, actor domain.Actor) (studio.Preferences, error) {
	return u.update(ctx, actor, studio.Preferences.Clear)
}

func (u *StudioUseCase) MarkOnboardingSeen(ctx context.Context, actor domain.Actor, flag string) (studio.Preferences, error) {
	return u.update(ctx, actor, func(p studio.Preferences) (studio.Preferences, error) {
		return p.MarkSeen(flag)
	})
}

// update applies a transition atomically against the stored document.
func (u *StudioUseCase) update(ctx context.Context, actor domain.Actor, apply func(studio.Preferences) (studio.Preferences, error)) (studio.Preferences, error) {
	var next studio.Preferences
	err := u.store.Update(ctx, actor.WorkspaceID, actor.UserID, func(raw []byte, found bool) ([]byte, error) {
		prefs, err := decodePreferences(raw, found)
		if err != nil {
			return nil, err
		}
		if next, err = apply(prefs); err != nil {
			return nil, err
		}
		out, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("encode preferences: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return studio.Preferences{}, err
	}
	return next, nil
}

func decodePreferences(raw []byte, found bool) (studio.Preferences, error) {
	if !found {
		return studio.DefaultPreferences(), nil
	}
	var prefs studio.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return studio.Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs.Normalize(), nil
}
