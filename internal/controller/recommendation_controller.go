package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// swagger:model NextStepRequest
type NextStepRequest struct {
	LearnerID string                `json:"learnerId" binding:"required"`
	Progress  model.CurrentProgress `json:"progress"`
}

// RecommendNextStep godoc
// @Summary Recommend next step
// @Description Advises whether to review the current module or proceed
// @Tags recommendations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body NextStepRequest true "Current progress"
// @Success 200 {object} util.Response{data=model.AIRecommendation} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/learning/recommendations/next-step [post]
func (c *RecommendationController) RecommendNextStep(ctx *gin.Context) {
	var req NextStepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, err := c.RecommendationService.RecommendNextStep(req.LearnerID, req.Progress)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "learning profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, rec)
}

// swagger:model InterventionsRequest
type InterventionsRequest struct {
	LearnerID   string                    `json:"learnerId" binding:"required"`
	Performance model.PerformanceSnapshot `json:"performance"`
}

// SuggestInterventions godoc
// @Summary Suggest interventions
// @Description Returns support and engagement interventions for a struggling learner
// @Tags recommendations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body InterventionsRequest true "Performance snapshot"
// @Success 200 {object} util.Response{data=[]model.AIRecommendation} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/learning/interventions [post]
func (c *RecommendationController) SuggestInterventions(ctx *gin.Context) {
	var req InterventionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	recs := c.RecommendationService.SuggestInterventions(req.LearnerID, req.Performance)
	util.Success(ctx, recs)
}

// PredictPerformance godoc
// @Summary Predict module performance
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/learning/learners/{learnerId}/modules/{moduleId}/prediction [get]
func (c *RecommendationController) PredictPerformance(ctx *gin.Context) {
	score := c.RecommendationService.PredictPerformance(ctx.Param("learnerId"), ctx.Param("moduleId"))
	util.Success(ctx, gin.H{"predictedScore": score})
}

// AssessMastery godoc
// @Summary Assess module mastery
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/learning/learners/{learnerId}/modules/{moduleId}/mastery [get]
func (c *RecommendationController) AssessMastery(ctx *gin.Context) {
	score := c.RecommendationService.AssessMastery(ctx.Param("learnerId"), ctx.Param("moduleId"))
	util.Success(ctx, gin.H{"masteryScore": score})
}

// DetectLearningGaps godoc
// @Summary Detect learning gaps
// @Tags recommendations
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Param contentId query string false "Content ID"
// @Success 200 {object} util.Response{data=[]string} "Success"
// @Router /api/learning/learners/{learnerId}/gaps [get]
func (c *RecommendationController) DetectLearningGaps(ctx *gin.Context) {
	gaps := c.RecommendationService.DetectLearningGaps(ctx.Param("learnerId"), ctx.Query("contentId"))
	util.Success(ctx, gaps)
}
