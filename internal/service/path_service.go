package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"edupath_backend/internal/model"
	"edupath_backend/internal/util"
	"edupath_backend/pkg/logger"

	"go.uber.org/zap"
)

// ContentCatalog is the read-only view of the content catalog the
// generator consumes.
type ContentCatalog interface {
	ListAll() ([]model.ContentItem, error)
	FindByID(id string) (*model.ContentItem, error)
}

// PathService generates learning paths and answers path queries.
type PathService struct {
	tables   *EngineStore
	catalog  ContentCatalog
	builder  *AssessmentBuilder
	profiles *ProfileService
}

func NewPathService(tables *EngineStore, catalog ContentCatalog, builder *AssessmentBuilder, profiles *ProfileService) *PathService {
	return &PathService{
		tables:   tables,
		catalog:  catalog,
		builder:  builder,
		profiles: profiles,
	}
}

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"technology", []string{"technology", "programming", "software", "computer", "coding", "data", "ai", "machine learning", "web"}},
	{"business", []string{"business", "management", "marketing", "finance", "entrepreneurship", "leadership"}},
	{"healthcare", []string{"health", "healthcare", "medical", "medicine", "nursing"}},
}

// Generate builds a personalized, ordered path for the learner's goals.
// An empty or fully filtered catalog yields an empty path, not an error.
func (s *PathService) Generate(ctx context.Context, learnerID string, goals []string, constraints model.PathConstraints) (*model.LearningPath, error) {
	items, err := s.catalog.ListAll()
	if err != nil {
		return nil, err
	}

	s.tables.mu.Lock()
	defer s.tables.mu.Unlock()

	profile := s.profiles.getOrCreateLocked(ctx, learnerID)

	// Content selection: relevance, difficulty fit, interest overlap.
	level := profile.KnowledgeProfile.CurrentLevel
	interests := profile.KnowledgeProfile.Interests
	modules := make([]model.LearningModule, 0, len(items))
	for _, item := range items {
		if !matchesGoals(item, goals) {
			continue
		}
		if !difficultyAppropriate(level, item.Difficulty) {
			continue
		}
		if !matchesInterests(item, interests) {
			continue
		}
		modules = append(modules, s.buildModule(item))
	}

	// Sequencing: ascending difficulty, then descending style affinity.
	// The sort is stable so ties keep catalog order.
	sort.SliceStable(modules, func(i, j int) bool {
		ri, rj := modules[i].Difficulty.Rank(), modules[j].Difficulty.Rank()
		if ri != rj {
			return ri < rj
		}
		return styleAffinity(profile, modules[i].Type) > styleAffinity(profile, modules[j].Type)
	})

	modules = applyConstraints(modules, constraints)
	for i := range modules {
		modules[i].Order = i + 1
	}

	path := &model.LearningPath{
		ID:                 model.GenerateUUID(),
		LearnerID:          learnerID,
		Title:              pathTitle(goals),
		Category:           categorize(goals),
		Difficulty:         dominantDifficulty(modules),
		EstimatedDuration:  totalDuration(modules),
		Status:             model.PathActive,
		CreatedAt:          time.Now(),
		LastAccessed:       time.Now(),
		Modules:            modules,
		Prerequisites:      unionOver(modules, func(m model.LearningModule) []string { return m.Prerequisites }),
		LearningObjectives: unionOver(modules, func(m model.LearningModule) []string { return m.LearningObjectives }),
		Skills:             unionOver(modules, func(m model.LearningModule) []string { return m.LearningObjectives }),
		Tags:               unionOver(modules, moduleTags),
		AIRecommendations:  seedRecommendations(profile),
		AdaptiveSettings:   deriveAdaptiveSettings(profile),
		PerformanceMetrics: model.NewPerformanceMetrics(),
	}

	s.tables.paths[path.ID] = path
	s.tables.persist(ctx)

	logger.Log.Info("learning path generated",
		zap.String("learnerId", learnerID),
		zap.String("pathId", path.ID),
		zap.Int("modules", len(path.Modules)))

	return clonePath(path), nil
}

// GetLearningPath returns an immutable snapshot of one path.
func (s *PathService) GetLearningPath(pathID string) (*model.LearningPath, error) {
	s.tables.mu.RLock()
	defer s.tables.mu.RUnlock()
	path, ok := s.tables.paths[pathID]
	if !ok {
		return nil, util.ErrPathNotFound
	}
	return clonePath(path), nil
}

// GetUserLearningPaths returns snapshots of all paths owned by a learner,
// most recent first.
func (s *PathService) GetUserLearningPaths(learnerID string) []*model.LearningPath {
	s.tables.mu.RLock()
	defer s.tables.mu.RUnlock()
	var out []*model.LearningPath
	for _, path := range s.tables.paths {
		if path.LearnerID == learnerID {
			out = append(out, clonePath(path))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *PathService) buildModule(item model.ContentItem) model.LearningModule {
	return model.LearningModule{
		ID:                 model.GenerateUUID(),
		Title:              item.Title,
		Description:        fmt.Sprintf("Study unit for %s", item.Title),
		Type:               item.Type,
		Duration:           item.Duration,
		Difficulty:         item.Difficulty,
		Status:             model.ModuleNotStarted,
		ContentID:          item.ID,
		Prerequisites:      append([]string{}, item.Prerequisites...),
		LearningObjectives: append([]string{}, item.LearningObjectives...),
		Assessment:         s.builder.Build(item),
		AdaptiveContent:    []model.AdaptiveContent{},
		CompletionCriteria: fmt.Sprintf("Pass the assessment with at least %d%%", defaultPassingScore),
		EstimatedTime:      item.Duration,
		MaxAttempts:        3,
	}
}

// matchesGoals accepts items whose title or tags fuzzy-match any goal
// (case-insensitive substring, both directions). Broad goals like
// "technology" additionally match through their category keyword set, so
// an item tagged "machine learning" is relevant to a technology goal.
func matchesGoals(item model.ContentItem, goals []string) bool {
	title := strings.ToLower(item.Title)
	for _, goal := range goals {
		g := strings.ToLower(goal)
		if fuzzyMatch(title, g) {
			return true
		}
		for _, tag := range item.Tags {
			if fuzzyMatch(strings.ToLower(tag), g) {
				return true
			}
		}
		for _, kw := range goalKeywords(g) {
			if strings.Contains(title, kw) {
				return true
			}
			for _, tag := range item.Tags {
				if fuzzyMatch(strings.ToLower(tag), kw) {
					return true
				}
			}
		}
	}
	return false
}

func fuzzyMatch(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// goalKeywords expands a goal into its category's keyword set, or nothing
// when the goal names no known category.
func goalKeywords(goal string) []string {
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(goal, kw) {
				return entry.keywords
			}
		}
	}
	return nil
}

// difficultyAppropriate buckets the learner's level. The bucket ranges
// deliberately overlap at their boundaries; an item is accepted if any
// bucket matches.
func difficultyAppropriate(level float64, difficulty model.DifficultyLevel) bool {
	switch difficulty {
	case model.DifficultyBeginner:
		return level <= 30
	case model.DifficultyIntermediate:
		return level >= 21 && level <= 70
	case model.DifficultyAdvanced:
		return level >= 51 && level <= 90
	case model.DifficultyExpert:
		return level > 80
	}
	return false
}

// matchesInterests is a no-op when the learner has no stated interests.
func matchesInterests(item model.ContentItem, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, tag := range item.Tags {
		t := strings.ToLower(tag)
		for _, interest := range interests {
			if t == strings.ToLower(interest) {
				return true
			}
		}
	}
	return false
}

func styleAffinity(profile *model.LearningProfile, medium model.MediumType) float64 {
	return profile.LearningStyle.Weight(medium.StyleFor())
}

func applyConstraints(modules []model.LearningModule, c model.PathConstraints) []model.LearningModule {
	if c.MaxModules > 0 && len(modules) > c.MaxModules {
		modules = modules[:c.MaxModules]
	}
	if c.MaxDurationHours > 0 {
		var minutes float64
		cut := len(modules)
		for i, m := range modules {
			minutes += float64(m.Duration)
			if minutes/60 > c.MaxDurationHours {
				cut = i
				break
			}
		}
		modules = modules[:cut]
	}
	return modules
}

func pathTitle(goals []string) string {
	if len(goals) == 0 {
		return "Personalized Learning Path"
	}
	return fmt.Sprintf("Personalized Path: %s", strings.Join(goals, ", "))
}

// categorize matches goals against a fixed keyword set; first match wins.
func categorize(goals []string) string {
	for _, goal := range goals {
		g := strings.ToLower(goal)
		for _, entry := range categoryKeywords {
			for _, kw := range entry.keywords {
				if strings.Contains(g, kw) {
					return entry.category
				}
			}
		}
	}
	return "general"
}

// dominantDifficulty is the most frequent module difficulty; ties break by
// first encountered.
func dominantDifficulty(modules []model.LearningModule) model.DifficultyLevel {
	if len(modules) == 0 {
		return model.DifficultyBeginner
	}
	counts := map[model.DifficultyLevel]int{}
	best := modules[0].Difficulty
	for _, m := range modules {
		counts[m.Difficulty]++
		if counts[m.Difficulty] > counts[best] {
			best = m.Difficulty
		}
	}
	return best
}

func totalDuration(modules []model.LearningModule) float64 {
	var minutes float64
	for _, m := range modules {
		minutes += float64(m.Duration)
	}
	return minutes / 60
}

// moduleTags surfaces the content tags carried on the generated questions.
func moduleTags(m model.LearningModule) []string {
	if len(m.Assessment.Questions) == 0 {
		return nil
	}
	return m.Assessment.Questions[0].Tags
}

func unionOver(modules []model.LearningModule, pick func(model.LearningModule) []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range modules {
		for _, v := range pick(m) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// deriveAdaptiveSettings maps profile traits onto the per-path knobs.
func deriveAdaptiveSettings(profile *model.LearningProfile) model.AdaptiveSettings {
	settings := model.AdaptiveSettings{
		DifficultyAdjustment:  model.AdjustAutomatic,
		PacingAdjustment:      model.PacingNormal,
		ContentPreference:     profile.LearningStyle.Dominant,
		SupportLevel:          model.SupportModerate,
		ChallengeLevel:        model.ChallengeModerate,
		FeedbackFrequency:     model.FeedbackImmediate,
		InterventionThreshold: 0.3,
		MasteryThreshold:      0.8,
	}
	if profile.MotivationProfile.Persistence > 0.7 {
		settings.PacingAdjustment = model.PacingAccelerated
	}
	if profile.MotivationProfile.SelfEfficacy < 0.6 {
		settings.SupportLevel = model.SupportExtensive
	}
	if profile.CognitiveProfile.ProcessingSpeed > 0.7 {
		settings.ChallengeLevel = model.ChallengeChallenging
	}
	return settings
}

// seedRecommendations emits the two generation-time recommendations.
func seedRecommendations(profile *model.LearningProfile) []model.AIRecommendation {
	pacing := model.PacingNormal
	if profile.MotivationProfile.Persistence > 0.7 {
		pacing = model.PacingAccelerated
	}
	return []model.AIRecommendation{
		{
			ID:          model.GenerateUUID(),
			Type:        model.RecPacing,
			Title:       "Suggested pacing",
			Description: fmt.Sprintf("A %s pace fits your persistence profile.", pacing),
			Confidence:  0.85,
			Reasoning: []string{
				fmt.Sprintf("Persistence score is %.2f", profile.MotivationProfile.Persistence),
			},
			Data:      model.PacingData(pacing),
			Priority:  model.PriorityMedium,
			CreatedAt: time.Now(),
		},
		{
			ID:          model.GenerateUUID(),
			Type:        model.RecContent,
			Title:       "Preferred content format",
			Description: fmt.Sprintf("Prioritize %s material where available.", profile.LearningStyle.Dominant),
			Confidence:  0.9,
			Reasoning: []string{
				fmt.Sprintf("Dominant learning style is %s", profile.LearningStyle.Dominant),
			},
			Data:      model.ContentPreferenceData(profile.LearningStyle.Dominant),
			Priority:  model.PriorityMedium,
			CreatedAt: time.Now(),
		},
	}
}
