package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
)

func TestGenerate_OrdersModulesByDifficulty(t *testing.T) {
	env := newTestEnv(
		contentItem("c-adv", "Advanced Programming Patterns", model.MediumReading, model.DifficultyAdvanced, 60, "programming"),
		contentItem("c-int", "Programming Data Structures", model.MediumVideo, model.DifficultyIntermediate, 40, "programming"),
		contentItem("c-beg", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	// default level 30: beginner and intermediate fit, advanced does not
	require.Len(t, path.Modules, 2)
	assert.Equal(t, "Introduction to Programming", path.Modules[0].Title)
	assert.Equal(t, "Programming Data Structures", path.Modules[1].Title)

	for i, m := range path.Modules {
		assert.Equal(t, i+1, m.Order)
		if i > 0 {
			assert.GreaterOrEqual(t, m.Difficulty.Rank(), path.Modules[i-1].Difficulty.Rank())
		}
	}

	assert.Equal(t, model.PathActive, path.Status)
	assert.Zero(t, path.CurrentProgress)
	assert.Equal(t, "technology", path.Category)
	assert.Equal(t, "Personalized Path: programming", path.Title)
	assert.InDelta(t, float64(30+40)/60, path.EstimatedDuration, 1e-9)
}

func TestGenerate_ExcludesAdvancedContentForBeginner(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Machine Learning Basics", model.MediumVideo, model.DifficultyBeginner, 30, "machine learning"),
		contentItem("c2", "Machine Learning Foundations", model.MediumInteractive, model.DifficultyAdvanced, 90, "machine learning"),
	)

	path, err := env.paths.Generate(context.Background(), "novice", []string{"machine learning"}, model.PathConstraints{})
	require.NoError(t, err)

	require.Len(t, path.Modules, 1)
	assert.Equal(t, "Machine Learning Basics", path.Modules[0].Title)
	assert.Equal(t, model.DifficultyBeginner, path.Difficulty)
}

func TestGenerate_DifficultyBucketsOverlapAtMidLevel(t *testing.T) {
	env := newTestEnv(
		contentItem("c-beg", "Programming Basics", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
		contentItem("c-int", "Programming in Practice", model.MediumVideo, model.DifficultyIntermediate, 40, "programming"),
		contentItem("c-adv", "Advanced Programming", model.MediumVideo, model.DifficultyAdvanced, 60, "programming"),
		contentItem("c-exp", "Expert Programming", model.MediumVideo, model.DifficultyExpert, 90, "programming"),
	)
	ctx := context.Background()

	env.profiles.GetOrCreate(ctx, "learner-1")
	level := 60.0
	_, err := env.profiles.Update(ctx, "learner-1", model.ProfileUpdate{
		KnowledgeProfile: &model.KnowledgeProfileUpdate{CurrentLevel: &level},
	})
	require.NoError(t, err)

	// level 60 sits in both the intermediate and advanced bands
	path, err := env.paths.Generate(ctx, "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	titles := make([]string, 0, len(path.Modules))
	for _, m := range path.Modules {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"Programming in Practice", "Advanced Programming"}, titles)
}

func TestGenerate_MatchesGoalsAgainstTags(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Thinking in Systems", model.MediumReading, model.DifficultyBeginner, 30, "business strategy"),
		contentItem("c2", "Watercolor Basics", model.MediumVideo, model.DifficultyBeginner, 30, "art"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"business"}, model.PathConstraints{})
	require.NoError(t, err)

	require.Len(t, path.Modules, 1)
	assert.Equal(t, "Thinking in Systems", path.Modules[0].Title)
	assert.Equal(t, "business", path.Category)
}

func TestGenerate_BroadGoalMatchesViaCategoryKeywords(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Intro to ML", model.MediumVideo, model.DifficultyBeginner, 30, "machine learning", "AI"),
		contentItem("c2", "Production ML Systems", model.MediumInteractive, model.DifficultyAdvanced, 90, "machine learning", "AI"),
	)

	// "technology" never appears in the items' titles or tags, but the
	// goal expands through its category keywords ("ai", "machine learning").
	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"technology"}, model.PathConstraints{})
	require.NoError(t, err)

	require.Len(t, path.Modules, 1)
	assert.Equal(t, "Intro to ML", path.Modules[0].Title)
	assert.Equal(t, model.DifficultyBeginner, path.Modules[0].Difficulty)
	assert.Equal(t, model.DifficultyBeginner, path.Difficulty)
}

func TestGenerate_AppliesConstraints(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Programming One", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
		contentItem("c2", "Programming Two", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
		contentItem("c3", "Programming Three", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"},
		model.PathConstraints{MaxModules: 2})
	require.NoError(t, err)
	require.Len(t, path.Modules, 2)

	path, err = env.paths.Generate(context.Background(), "learner-1", []string{"programming"},
		model.PathConstraints{MaxDurationHours: 1})
	require.NoError(t, err)
	require.Len(t, path.Modules, 2)
	assert.InDelta(t, 1.0, path.EstimatedDuration, 1e-9)
}

func TestGenerate_EmptyCatalogYieldsEmptyPath(t *testing.T) {
	env := newTestEnv()

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	assert.Empty(t, path.Modules)
	assert.Equal(t, model.DifficultyBeginner, path.Difficulty)
	assert.Zero(t, path.EstimatedDuration)
	assert.Equal(t, model.PathActive, path.Status)
}

func TestGenerate_SeedsRecommendations(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	require.Len(t, path.AIRecommendations, 2)
	pacing, content := path.AIRecommendations[0], path.AIRecommendations[1]
	assert.Equal(t, model.RecPacing, pacing.Type)
	assert.InDelta(t, 0.85, pacing.Confidence, 1e-9)
	assert.Equal(t, model.DataPacing, pacing.Data.Kind)
	assert.Equal(t, model.RecContent, content.Type)
	assert.InDelta(t, 0.9, content.Confidence, 1e-9)
	assert.Equal(t, model.StyleVisual, content.Data.PreferredFormat)
}

func TestGenerate_AssessmentPerModule(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 120, "programming"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	require.Len(t, path.Modules, 1)
	assessment := path.Modules[0].Assessment
	assert.Len(t, assessment.Questions, 12)
	assert.Equal(t, 80, assessment.PassingScore)
	assert.Equal(t, 120, assessment.TimeLimit)
}

func TestGetLearningPath_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.paths.GetLearningPath("missing")
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}

func TestGetLearningPath_ReturnsImmutableSnapshot(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	generated, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	snapshot, err := env.paths.GetLearningPath(generated.ID)
	require.NoError(t, err)
	snapshot.Title = "mutated"
	snapshot.Modules[0].Status = model.ModuleCompleted

	fresh, err := env.paths.GetLearningPath(generated.ID)
	require.NoError(t, err)
	assert.Equal(t, generated.Title, fresh.Title)
	assert.Equal(t, model.ModuleNotStarted, fresh.Modules[0].Status)
}

func TestGetUserLearningPaths_FiltersAndOrders(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	first, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)
	second, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)
	_, err = env.paths.Generate(context.Background(), "learner-2", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	paths := env.paths.GetUserLearningPaths("learner-1")
	require.Len(t, paths, 2)
	assert.Equal(t, second.ID, paths[0].ID)
	assert.Equal(t, first.ID, paths[1].ID)

	assert.Empty(t, env.paths.GetUserLearningPaths("nobody"))
}

func TestGenerate_PersistsSnapshot(t *testing.T) {
	env := newTestEnv(
		contentItem("c1", "Introduction to Programming", model.MediumVideo, model.DifficultyBeginner, 30, "programming"),
	)

	path, err := env.paths.Generate(context.Background(), "learner-1", []string{"programming"}, model.PathConstraints{})
	require.NoError(t, err)

	require.NotNil(t, env.store.snapshot)
	assert.Contains(t, env.store.snapshot.Paths, path.ID)
	assert.Contains(t, env.store.snapshot.Profiles, "learner-1")
}
