package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

func TestAdaptContent_NoTriggers(t *testing.T) {
	env := newTestEnv()

	fragments := env.adaptive.AdaptContent(context.Background(), "learner-1", "m1",
		model.ModulePerformance{Score: 0.8, TimeSpent: 20, EstimatedTime: 30})
	assert.Empty(t, fragments)
}

func TestAdaptContent_RemediationOnLowScore(t *testing.T) {
	env := newTestEnv()

	fragments := env.adaptive.AdaptContent(context.Background(), "learner-1", "m1",
		model.ModulePerformance{Score: 0.4, TimeSpent: 20, EstimatedTime: 30})
	require.Len(t, fragments, 1)

	assert.Equal(t, model.FragmentRemediation, fragments[0].Type)
	assert.Equal(t, model.ShiftEasier, fragments[0].Difficulty)
	assert.Equal(t, model.SignalPerformance, fragments[0].Condition.Signal)
	assert.Equal(t, []string{"low_score"}, fragments[0].Triggers)
}

func TestAdaptContent_HintOnOvertime(t *testing.T) {
	env := newTestEnv()

	fragments := env.adaptive.AdaptContent(context.Background(), "learner-1", "m1",
		model.ModulePerformance{Score: 0.9, TimeSpent: 50, EstimatedTime: 30})
	require.Len(t, fragments, 1)

	assert.Equal(t, model.FragmentHint, fragments[0].Type)
	assert.Equal(t, model.ShiftSame, fragments[0].Difficulty)
	assert.Equal(t, []string{"over_time"}, fragments[0].Triggers)
}

func TestAdaptContent_BothTriggersAppendToModule(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)
	ctx := context.Background()

	path, err := env.paths.Generate(ctx, "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)
	moduleID := path.Modules[0].ID

	fragments := env.adaptive.AdaptContent(ctx, "learner-1", moduleID,
		model.ModulePerformance{Score: 0.2, TimeSpent: 60, EstimatedTime: 30})
	require.Len(t, fragments, 2)
	assert.Equal(t, model.FragmentRemediation, fragments[0].Type)
	assert.Equal(t, model.FragmentHint, fragments[1].Type)

	stored, err := env.paths.GetLearningPath(path.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Modules[0].AdaptiveContent, 2)
}

func TestAdaptContent_ExactThresholdDoesNotFire(t *testing.T) {
	env := newTestEnv()

	fragments := env.adaptive.AdaptContent(context.Background(), "learner-1", "m1",
		model.ModulePerformance{Score: 0.6, TimeSpent: 45, EstimatedTime: 30})
	assert.Empty(t, fragments)
}

func TestOptimizePacing_UnknownPath(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	_, err := env.adaptive.OptimizePacing("learner-1", "missing")
	assert.ErrorIs(t, err, util.ErrPathNotFound)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	// another learner's path is treated as missing
	_, err = env.adaptive.OptimizePacing("learner-2", path.ID)
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}

func TestOptimizePacing_Branches(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)
	ctx := context.Background()

	path, err := env.paths.Generate(ctx, "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	setMetrics := func(engagement, completion float64) {
		env.engine.mu.Lock()
		stored := env.engine.paths[path.ID]
		stored.PerformanceMetrics.EngagementScore = engagement
		stored.PerformanceMetrics.CompletionRate = completion
		env.engine.mu.Unlock()
	}

	setMetrics(0.9, 0.95)
	settings, err := env.adaptive.OptimizePacing("learner-1", path.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PacingAccelerated, settings.PacingAdjustment)

	setMetrics(0.4, 0.95)
	settings, err = env.adaptive.OptimizePacing("learner-1", path.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PacingRelaxed, settings.PacingAdjustment)

	setMetrics(0.7, 0.8)
	settings, err = env.adaptive.OptimizePacing("learner-1", path.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PacingNormal, settings.PacingAdjustment)

	// the stored path keeps its original settings
	stored, err := env.paths.GetLearningPath(path.ID)
	require.NoError(t, err)
	assert.Equal(t, path.AdaptiveSettings.PacingAdjustment, stored.AdaptiveSettings.PacingAdjustment)
}

func TestGeneratePersonalizedContent_DefaultProfile(t *testing.T) {
	env := newTestEnv()

	base := map[string]interface{}{"title": "Lesson 1", "body": "text"}
	enriched := env.adaptive.GeneratePersonalizedContent(context.Background(), "learner-1", base)

	// base keys survive unchanged
	assert.Equal(t, "Lesson 1", enriched["title"])
	assert.Equal(t, "text", enriched["body"])

	// defaults: visual dominant, 25 minute attention span, mastery orientation
	assert.Equal(t, true, enriched["visualElements"])
	assert.Equal(t, true, enriched["diagrams"])
	assert.Equal(t, true, enriched["chunkedSections"])
	assert.Equal(t, "every 25 minutes", enriched["breakPoints"])
	assert.Equal(t, true, enriched["deepDiveMaterial"])
	assert.Equal(t, true, enriched["practiceExercises"])
}

func TestGeneratePersonalizedContent_SkipsUnmatchedTraits(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.profiles.GetOrCreate(ctx, "learner-1")
	auditory := 0.9
	attention := 45
	orientation := model.OrientationPerformance
	_, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		LearningStyle:    &model.LearningStyleUpdate{Auditory: &auditory},
		CognitiveProfile: &model.CognitiveProfileUpdate{AttentionSpan: &attention},
		MotivationProfile: &model.MotivationProfileUpdate{
			GoalOrientation: &orientation,
		},
	})
	require.NoError(t, err)

	enriched := env.adaptive.GeneratePersonalizedContent(ctx, "learner-1", map[string]interface{}{})
	assert.NotContains(t, enriched, "visualElements")
	assert.NotContains(t, enriched, "chunkedSections")
	assert.NotContains(t, enriched, "deepDiveMaterial")
}
