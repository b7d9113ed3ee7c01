package service

import (
	"context"
	"time"

	"edupath_backend/internal/model"
	"edupath_backend/pkg/logger"

	"go.uber.org/zap"
)

const engagementStep = 0.1

// ProgressService applies module completion events to a path and keeps the
// aggregate metrics consistent.
type ProgressService struct {
	tables  *EngineStore
	archive *ArchiveService // optional
}

func NewProgressService(tables *EngineStore, archive *ArchiveService) *ProgressService {
	return &ProgressService{tables: tables, archive: archive}
}

// UpdateModuleProgress applies one progress event. Unknown path or module
// ids return false without mutating anything: progress events may race
// with path archival elsewhere, so this is a soft no-op, not an error.
func (s *ProgressService) UpdateModuleProgress(ctx context.Context, pathID, moduleID string, event model.ModuleProgressEvent) bool {
	s.tables.mu.Lock()

	path, ok := s.tables.paths[pathID]
	if !ok {
		s.tables.mu.Unlock()
		return false
	}
	module := path.ModuleByID(moduleID)
	if module == nil {
		s.tables.mu.Unlock()
		return false
	}

	applyEvent(module, event)
	path.RecomputeProgress()
	path.LastAccessed = time.Now()
	if path.CurrentProgress >= 100 {
		path.Status = model.PathCompleted
	}
	recomputeMetrics(path, event)

	session := model.LearningSession{
		ID:        model.GenerateUUID(),
		LearnerID: path.LearnerID,
		PathID:    pathID,
		ModuleID:  moduleID,
		Duration:  event.TimeSpent,
		Score:     event.Score,
		Status:    module.Status,
		CreatedAt: time.Now(),
	}
	s.tables.sessions[path.LearnerID] = append(s.tables.sessions[path.LearnerID], session)

	s.tables.persist(ctx)
	completed := path.Status == model.PathCompleted
	report := clonePath(path)
	s.tables.mu.Unlock()

	if completed && s.archive != nil {
		if err := s.archive.ArchivePathReport(ctx, report); err != nil {
			logger.Log.Warn("path report archival failed",
				zap.String("pathId", pathID), zap.Error(err))
		}
	}

	return true
}

// GetSessionHistory returns the learner's recorded sessions, oldest first.
func (s *ProgressService) GetSessionHistory(learnerID string) []model.LearningSession {
	s.tables.mu.RLock()
	defer s.tables.mu.RUnlock()
	return append([]model.LearningSession{}, s.tables.sessions[learnerID]...)
}

func applyEvent(module *model.LearningModule, event model.ModuleProgressEvent) {
	now := time.Now()

	// completed and skipped are terminal; not_started is never re-entered.
	if !module.Status.Terminal() && event.Status != model.ModuleNotStarted && event.Status != "" {
		module.Status = event.Status
	}
	if module.StartedAt == nil && module.Status != model.ModuleNotStarted {
		module.StartedAt = &now
	}
	if module.Status == model.ModuleCompleted && module.CompletedAt == nil {
		module.CompletedAt = &now
	}
	if event.Score != nil {
		score := *event.Score
		module.Score = &score
		module.Attempts++
	}
	if event.TimeSpent > 0 {
		module.ActualTime = int(event.TimeSpent)
	}
}

func recomputeMetrics(path *model.LearningPath, event model.ModuleProgressEvent) {
	m := &path.PerformanceMetrics

	var scoreSum float64
	scored := 0
	completed := 0
	for i := range path.Modules {
		if path.Modules[i].Score != nil {
			scoreSum += *path.Modules[i].Score
			scored++
		}
		if path.Modules[i].Status == model.ModuleCompleted {
			completed++
		}
	}

	if scored > 0 {
		m.OverallScore = scoreSum / float64(scored) * 100
	}
	m.TimeSpent += event.TimeSpent
	m.EngagementScore = min1(m.EngagementScore + engagementStep)
	if len(path.Modules) > 0 {
		m.CompletionRate = float64(completed) / float64(len(path.Modules))
	}
	if event.Score != nil {
		m.DifficultyProgression = append(m.DifficultyProgression, *event.Score)
	}

	weeks := time.Since(path.CreatedAt).Hours() / 24 / 7
	if weeks < 1 {
		weeks = 1
	}
	m.LearningVelocity = float64(completed) / weeks

	remaining := len(path.Modules) - completed
	if m.LearningVelocity > 0 {
		m.PredictedCompletion = float64(remaining) / m.LearningVelocity * 7
	}

	m.MasteryLevel = model.MasteryFromScore(m.OverallScore)
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
