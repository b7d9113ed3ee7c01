package repository

import (
	"context"
	"encoding/json"

	"edupath_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// SnapshotStore is the persistence adapter for the engine's in-memory
// tables: one whole-snapshot load at startup, one save after every
// mutating operation. Implementations own write atomicity.
type SnapshotStore interface {
	Load(ctx context.Context) (*model.EngineSnapshot, error)
	Save(ctx context.Context, snap *model.EngineSnapshot) error
}

const (
	keyPaths    = "edupath:engine:paths"
	keyProfiles = "edupath:engine:profiles"
	keySessions = "edupath:engine:sessions"
)

// RedisSnapshotStore keeps the three tables as JSON values under fixed keys.
type RedisSnapshotStore struct {
	rdb *redis.Client
}

func NewRedisSnapshotStore(rdb *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*model.EngineSnapshot, error) {
	snap := model.NewEngineSnapshot()

	vals, err := s.rdb.MGet(ctx, keyPaths, keyProfiles, keySessions).Result()
	if err != nil {
		return nil, err
	}

	if raw, ok := vals[0].(string); ok {
		if err := json.Unmarshal([]byte(raw), &snap.Paths); err != nil {
			return nil, err
		}
	}
	if raw, ok := vals[1].(string); ok {
		if err := json.Unmarshal([]byte(raw), &snap.Profiles); err != nil {
			return nil, err
		}
	}
	if raw, ok := vals[2].(string); ok {
		if err := json.Unmarshal([]byte(raw), &snap.Sessions); err != nil {
			return nil, err
		}
	}

	return snap, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snap *model.EngineSnapshot) error {
	paths, err := json.Marshal(snap.Paths)
	if err != nil {
		return err
	}
	profiles, err := json.Marshal(snap.Profiles)
	if err != nil {
		return err
	}
	sessions, err := json.Marshal(snap.Sessions)
	if err != nil {
		return err
	}

	// TxPipeline so the three keys move together.
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, keyPaths, paths, 0)
	pipe.Set(ctx, keyProfiles, profiles, 0)
	pipe.Set(ctx, keySessions, sessions, 0)
	_, err = pipe.Exec(ctx)
	return err
}
