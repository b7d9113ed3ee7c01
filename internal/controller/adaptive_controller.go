package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AdaptiveController struct {
	AdaptiveService *service.AdaptiveService
}

func NewAdaptiveController(adaptiveService *service.AdaptiveService) *AdaptiveController {
	return &AdaptiveController{AdaptiveService: adaptiveService}
}

// swagger:model AdaptContentRequest
type AdaptContentRequest struct {
	LearnerID   string                  `json:"learnerId" binding:"required"`
	ModuleID    string                  `json:"moduleId" binding:"required"`
	Performance model.ModulePerformance `json:"performance"`
}

// AdaptContent godoc
// @Summary Adapt module content
// @Description Generates adaptive content fragments from a live performance signal
// @Tags adaptive
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AdaptContentRequest true "Performance signal"
// @Success 200 {object} util.Response{data=[]model.AdaptiveContent} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/learning/adapt [post]
func (c *AdaptiveController) AdaptContent(ctx *gin.Context) {
	var req AdaptContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fragments := c.AdaptiveService.AdaptContent(ctx.Request.Context(), req.LearnerID, req.ModuleID, req.Performance)
	util.Success(ctx, fragments)
}

// swagger:model OptimizePacingRequest
type OptimizePacingRequest struct {
	LearnerID string `json:"learnerId" binding:"required"`
}

// OptimizePacing godoc
// @Summary Optimize path pacing
// @Description Recomputes the pacing mode from the learner's engagement and completion rate
// @Tags adaptive
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Path ID"
// @Param body body OptimizePacingRequest true "Pacing request"
// @Success 200 {object} util.Response{data=model.AdaptiveSettings} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Path not found"
// @Router /api/learning/paths/{id}/pacing [post]
func (c *AdaptiveController) OptimizePacing(ctx *gin.Context) {
	var req OptimizePacingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	settings, err := c.AdaptiveService.OptimizePacing(req.LearnerID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx, "learning path not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, settings)
}

// swagger:model PersonalizeRequest
type PersonalizeRequest struct {
	LearnerID   string                 `json:"learnerId" binding:"required"`
	BaseContent map[string]interface{} `json:"baseContent"`
}

// GeneratePersonalizedContent godoc
// @Summary Personalize content
// @Description Annotates base content with profile-driven presentation hints
// @Tags adaptive
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PersonalizeRequest true "Base content"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/learning/personalize [post]
func (c *AdaptiveController) GeneratePersonalizedContent(ctx *gin.Context) {
	var req PersonalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content := c.AdaptiveService.GeneratePersonalizedContent(ctx.Request.Context(), req.LearnerID, req.BaseContent)
	util.Success(ctx, content)
}
