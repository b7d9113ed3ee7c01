package model

import "time"

// LearningSession is one recorded study interval, appended by the progress
// tracker for every module progress event.
type LearningSession struct {
	ID        string       `json:"id"`
	LearnerID string       `json:"learnerId"`
	PathID    string       `json:"pathId"`
	ModuleID  string       `json:"moduleId"`
	Duration  float64      `json:"duration"` // minutes
	Score     *float64     `json:"score,omitempty"`
	Status    ModuleStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// EngineSnapshot is the unit of persistence: the engine's three tables,
// serialized whole after every mutating operation.
type EngineSnapshot struct {
	Paths    map[string]*LearningPath     `json:"paths"`
	Profiles map[string]*LearningProfile  `json:"profiles"`
	Sessions map[string][]LearningSession `json:"sessions"` // keyed by learner id
}

func NewEngineSnapshot() *EngineSnapshot {
	return &EngineSnapshot{
		Paths:    map[string]*LearningPath{},
		Profiles: map[string]*LearningProfile{},
		Sessions: map[string][]LearningSession{},
	}
}
