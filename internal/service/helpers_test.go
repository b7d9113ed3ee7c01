package service

import (
	"context"
	"errors"

	"edupath_backend/internal/model"
)

// fakeCatalog serves a fixed slice of content items.
type fakeCatalog struct {
	items []model.ContentItem
}

func (c *fakeCatalog) ListAll() ([]model.ContentItem, error) {
	return append([]model.ContentItem{}, c.items...), nil
}

func (c *fakeCatalog) FindByID(id string) (*model.ContentItem, error) {
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, errors.New("content not found")
}

// memoryStore records snapshot saves so tests can assert persistence
// behavior without Redis.
type memoryStore struct {
	snapshot *model.EngineSnapshot
	saves    int
	failSave bool
}

func (s *memoryStore) Load(ctx context.Context) (*model.EngineSnapshot, error) {
	if s.snapshot == nil {
		return model.NewEngineSnapshot(), nil
	}
	return s.snapshot, nil
}

func (s *memoryStore) Save(ctx context.Context, snap *model.EngineSnapshot) error {
	if s.failSave {
		return errors.New("store unavailable")
	}
	s.snapshot = snap
	s.saves++
	return nil
}

func contentItem(id, title string, medium model.MediumType, difficulty model.DifficultyLevel, duration int, tags ...string) model.ContentItem {
	item := model.ContentItem{
		Title:      title,
		Type:       medium,
		Difficulty: difficulty,
		Duration:   duration,
		Category:   "technology",
		Tags:       model.StringList(tags),
	}
	item.ID = id
	return item
}

type testEnv struct {
	store          *memoryStore
	engine         *EngineStore
	profiles       *ProfileService
	paths          *PathService
	adaptive       *AdaptiveService
	recommendation *RecommendationService
	progress       *ProgressService
}

func newTestEnv(items ...model.ContentItem) *testEnv {
	store := &memoryStore{}
	engine := NewEngineStore(store)
	profiles := NewProfileService(engine)
	return &testEnv{
		store:          store,
		engine:         engine,
		profiles:       profiles,
		paths:          NewPathService(engine, &fakeCatalog{items: items}, NewAssessmentBuilder(), profiles),
		adaptive:       NewAdaptiveService(engine, profiles),
		recommendation: NewRecommendationService(engine),
		progress:       NewProgressService(engine, nil),
	}
}
