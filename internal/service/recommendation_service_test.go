package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

func TestRecommendNextStep_RequiresProfile(t *testing.T) {
	env := newTestEnv()

	_, err := env.recommendation.RecommendNextStep("ghost", model.CurrentProgress{ModuleID: "m1", LastScore: 0.9})
	assert.ErrorIs(t, err, util.ErrProfileNotFound)
}

func TestRecommendNextStep_ReviewOnLowScore(t *testing.T) {
	env := newTestEnv()
	env.profiles.GetOrCreate(context.Background(), "learner-1")

	rec, err := env.recommendation.RecommendNextStep("learner-1", model.CurrentProgress{ModuleID: "m1", LastScore: 0.5})
	require.NoError(t, err)

	assert.Equal(t, model.RecNextStep, rec.Type)
	assert.Equal(t, "review", rec.Data.Action)
	assert.Equal(t, "m1", rec.Data.ModuleID)
	assert.InDelta(t, 0.9, rec.Confidence, 1e-9)
	assert.Equal(t, model.PriorityHigh, rec.Priority)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestRecommendNextStep_ProceedAtThreshold(t *testing.T) {
	env := newTestEnv()
	env.profiles.GetOrCreate(context.Background(), "learner-1")

	rec, err := env.recommendation.RecommendNextStep("learner-1", model.CurrentProgress{ModuleID: "m1", LastScore: 0.7})
	require.NoError(t, err)

	assert.Equal(t, "proceed", rec.Data.Action)
	assert.InDelta(t, 0.8, rec.Confidence, 1e-9)
}

func TestSuggestInterventions_BothFireInOrder(t *testing.T) {
	env := newTestEnv()

	recs := env.recommendation.SuggestInterventions("learner-1", model.PerformanceSnapshot{Score: 0.3, Engagement: 0.2})
	require.Len(t, recs, 2)

	assert.Equal(t, model.PriorityUrgent, recs[0].Priority)
	assert.Equal(t, model.DataSupport, recs[0].Data.Kind)
	assert.Equal(t, model.SupportExtensive, recs[0].Data.SuggestedSupport)

	assert.Equal(t, model.PriorityHigh, recs[1].Priority)
	assert.Equal(t, model.DataEngagement, recs[1].Data.Kind)
}

func TestSuggestInterventions_NoneAtHealthyLevels(t *testing.T) {
	env := newTestEnv()

	recs := env.recommendation.SuggestInterventions("learner-1", model.PerformanceSnapshot{Score: 0.8, Engagement: 0.7})
	assert.Empty(t, recs)
}

func TestPredictPerformance_DeterministicAndCapped(t *testing.T) {
	env := newTestEnv()

	// default profile: 0.7 + 0.2*0.6 + 0.1*0.6 + min(30/100, 0.2) = 1.08, capped
	first := env.recommendation.PredictPerformance("learner-1", "m1")
	second := env.recommendation.PredictPerformance("learner-1", "m1")
	assert.InDelta(t, 1.0, first, 1e-9)
	assert.Equal(t, first, second)

	// prediction for an unknown learner must not create a profile
	_, err := env.profiles.Get("learner-1")
	assert.ErrorIs(t, err, util.ErrProfileNotFound)
}

func TestAssessMastery_UsesLowerBase(t *testing.T) {
	env := newTestEnv()

	got := env.recommendation.AssessMastery("learner-1", "m1")
	assert.InDelta(t, 0.98, got, 1e-9)
}

func TestScores_ReflectProfileFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.profiles.GetOrCreate(ctx, "learner-1")
	reasoning := 0.0
	motivation := 0.0
	level := 0.0
	_, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		CognitiveProfile: &model.CognitiveProfileUpdate{LogicalReasoning: &reasoning},
		MotivationProfile: &model.MotivationProfileUpdate{
			IntrinsicMotivation: &motivation,
		},
		KnowledgeProfile: &model.KnowledgeProfileUpdate{CurrentLevel: &level},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, env.recommendation.PredictPerformance("learner-1", "m1"), 1e-9)
	assert.InDelta(t, 0.6, env.recommendation.AssessMastery("learner-1", "m1"), 1e-9)
}

func TestDetectLearningGaps_FixedOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// default profile: level 30 < 50 and selfEfficacy 0.6 < 0.7
	gaps := env.recommendation.DetectLearningGaps("unknown", "c1")
	assert.Equal(t, []string{"Fundamental concepts", "Confidence building"}, gaps)

	env.profiles.GetOrCreate(ctx, "learner-1")
	memory := 0.3
	level := 80.0
	efficacy := 0.9
	_, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		CognitiveProfile:  &model.CognitiveProfileUpdate{MemoryCapacity: &memory},
		KnowledgeProfile:  &model.KnowledgeProfileUpdate{CurrentLevel: &level},
		MotivationProfile: &model.MotivationProfileUpdate{SelfEfficacy: &efficacy},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Memory retention strategies"}, env.recommendation.DetectLearningGaps("learner-1", "c1"))
}
