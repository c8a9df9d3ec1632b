package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"adops/internal/core/domain"
)

// maxUpdateAttempts bounds optimistic retries of one preference update.
const maxUpdateAttempts = 10

// ErrPreferencesContended is returned when concurrent writers kept
// invalidating an update.
var ErrPreferencesContended = domain.NewError(domain.KindConflict, "preferences changed concurrently, retry", nil)

// PreferenceStore implements port.PreferenceStore. Each user has one JSON
// document per workspace.
type PreferenceStore struct {
	rdb *redis.Client
}

func NewPreferenceStore(rdb *redis.Client) *PreferenceStore {
	return &PreferenceStore{rdb: rdb}
}

func preferenceKey(workspaceID, userID uuid.UUID) string {
	return fmt.Sprintf("studio:prefs:%s:%s", workspaceID, userID)
}

func (s *PreferenceStore) Load(ctx context.Context, workspaceID, userID uuid.UUID) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, preferenceKey(workspaceID, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load preferences: %w", err)
	}
	return raw, true, nil
}

// Update runs fn under WATCH on the user's document and writes its result
// in a MULTI block, retrying when the document changed in between.
func (s *PreferenceStore) Update(ctx context.Context, workspaceID, userID uuid.UUID, fn func(raw []byte, found bool) ([]byte, error)) error {
	key := preferenceKey(workspaceID, userID)
	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		found := true
		if errors.Is(err, redis.Nil) {
			raw, found, err = nil, false, nil
		}
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}
		next, err := fn(raw, found)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		if err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
		return nil
	}

	for range maxUpdateAttempts {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrPreferencesContended
}
