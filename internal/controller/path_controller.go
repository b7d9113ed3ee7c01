package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type PathController struct {
	PathService     *service.PathService
	ProgressService *service.ProgressService
}

func NewPathController(pathService *service.PathService, progressService *service.ProgressService) *PathController {
	return &PathController{
		PathService:     pathService,
		ProgressService: progressService,
	}
}

// swagger:model GeneratePathRequest
type GeneratePathRequest struct {
	LearnerID   string                `json:"learnerId" binding:"required"`
	Goals       []string              `json:"goals" binding:"required,min=1"`
	Constraints model.PathConstraints `json:"constraints"`
}

// GeneratePath godoc
// @Summary Generate learning path
// @Description Builds a personalized path from the content catalog for the learner's goals
// @Tags paths
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GeneratePathRequest true "Generation request"
// @Success 201 {object} util.Response{data=model.LearningPath} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 500 {object} util.Response "Internal error"
// @Router /api/learning/paths [post]
func (c *PathController) GeneratePath(ctx *gin.Context) {
	var req GeneratePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Generate(ctx.Request.Context(), req.LearnerID, req.Goals, req.Constraints)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, path)
}

// GetPath godoc
// @Summary Get learning path
// @Tags paths
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Path ID"
// @Success 200 {object} util.Response{data=model.LearningPath} "Success"
// @Failure 404 {object} util.Response "Path not found"
// @Router /api/learning/paths/{id} [get]
func (c *PathController) GetPath(ctx *gin.Context) {
	path, err := c.PathService.GetLearningPath(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx, "learning path not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, path)
}

// ListLearnerPaths godoc
// @Summary List a learner's paths
// @Description Returns the learner's paths, newest first
// @Tags paths
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Success 200 {object} util.Response{data=[]model.LearningPath} "Success"
// @Router /api/learning/learners/{learnerId}/paths [get]
func (c *PathController) ListLearnerPaths(ctx *gin.Context) {
	paths := c.PathService.GetUserLearningPaths(ctx.Param("learnerId"))
	util.Success(ctx, paths)
}

// UpdateModuleProgress godoc
// @Summary Record module progress
// @Description Applies a progress event to a module and recomputes path metrics
// @Tags paths
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Path ID"
// @Param moduleId path string true "Module ID"
// @Param body body model.ModuleProgressEvent true "Progress event"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/learning/paths/{id}/modules/{moduleId}/progress [post]
func (c *PathController) UpdateModuleProgress(ctx *gin.Context) {
	var event model.ModuleProgressEvent
	if err := ctx.ShouldBindJSON(&event); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	applied := c.ProgressService.UpdateModuleProgress(ctx.Request.Context(), ctx.Param("id"), ctx.Param("moduleId"), event)
	util.Success(ctx, gin.H{"applied": applied})
}

// GetSessionHistory godoc
// @Summary Learner session history
// @Tags paths
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Success 200 {object} util.Response{data=[]model.LearningSession} "Success"
// @Router /api/learning/learners/{learnerId}/sessions [get]
func (c *PathController) GetSessionHistory(ctx *gin.Context) {
	sessions := c.ProgressService.GetSessionHistory(ctx.Param("learnerId"))
	util.Success(ctx, sessions)
}
