package service

import (
	"context"
	"encoding/json"
	"sync"

	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/pkg/logger"

	"go.uber.org/zap"
)

// EngineStore owns the engine's in-memory tables. The snapshot store is the
// durable side: loaded once at startup, flushed after every mutating call.
// Persistence failures are logged and swallowed; the in-memory tables stay
// the source of truth for the rest of the process lifetime.
//
// mu serializes all mutating operations; none of the recompute steps are
// idempotent under concurrent read-modify-write. Read-only operations take
// the read lock and may overlap freely.
type EngineStore struct {
	mu       sync.RWMutex
	store    repository.SnapshotStore // nil degrades to in-memory only
	paths    map[string]*model.LearningPath
	profiles map[string]*model.LearningProfile
	sessions map[string][]model.LearningSession
}

func NewEngineStore(store repository.SnapshotStore) *EngineStore {
	return &EngineStore{
		store:    store,
		paths:    map[string]*model.LearningPath{},
		profiles: map[string]*model.LearningProfile{},
		sessions: map[string][]model.LearningSession{},
	}
}

// LoadSnapshot hydrates the tables from the persistence adapter. Loss of
// the adapter is not fatal.
func (s *EngineStore) LoadSnapshot(ctx context.Context) {
	if s.store == nil {
		return
	}
	snap, err := s.store.Load(ctx)
	if err != nil {
		logger.Log.Warn("snapshot load failed, starting with empty tables", zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Paths != nil {
		s.paths = snap.Paths
	}
	if snap.Profiles != nil {
		s.profiles = snap.Profiles
	}
	if snap.Sessions != nil {
		s.sessions = snap.Sessions
	}
	logger.Log.Info("engine snapshot loaded",
		zap.Int("paths", len(s.paths)),
		zap.Int("profiles", len(s.profiles)))
}

// persist flushes all three tables through the adapter.
func (s *EngineStore) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	snap := &model.EngineSnapshot{
		Paths:    s.paths,
		Profiles: s.profiles,
		Sessions: s.sessions,
	}
	if err := s.store.Save(ctx, snap); err != nil {
		logger.Log.Error("snapshot save failed", zap.Error(err))
	}
}

// clonePath returns an immutable deep copy safe to hand to callers.
func clonePath(p *model.LearningPath) *model.LearningPath {
	raw, _ := json.Marshal(p)
	var out model.LearningPath
	_ = json.Unmarshal(raw, &out)
	return &out
}

func cloneProfile(p *model.LearningProfile) *model.LearningProfile {
	raw, _ := json.Marshal(p)
	var out model.LearningProfile
	_ = json.Unmarshal(raw, &out)
	return &out
}
