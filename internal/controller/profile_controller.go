package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/service"
	"edupath_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// GetLearningProfile godoc
// @Summary Get learning profile
// @Description Returns the learner's profile, creating a default one if none exists
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Success 200 {object} util.Response{data=model.LearningProfile} "Success"
// @Router /api/learning/profiles/{learnerId} [get]
func (c *ProfileController) GetLearningProfile(ctx *gin.Context) {
	learnerID := ctx.Param("learnerId")

	profile := c.ProfileService.GetOrCreate(ctx.Request.Context(), learnerID)
	util.Success(ctx, profile)
}

// UpdateLearningProfile godoc
// @Summary Update learning profile
// @Description Merges the provided fields into an existing profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param learnerId path string true "Learner ID"
// @Param body body model.ProfileUpdate true "Fields to merge"
// @Success 200 {object} util.Response{data=model.LearningProfile} "Success"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/learning/profiles/{learnerId} [put]
func (c *ProfileController) UpdateLearningProfile(ctx *gin.Context) {
	learnerID := ctx.Param("learnerId")

	var update model.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Update(ctx.Request.Context(), learnerID, update)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "learning profile not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}
