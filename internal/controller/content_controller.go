package controller

import (
	"edupath_backend/internal/model"
	"edupath_backend/internal/repository"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentController struct {
	Content *repository.ContentRepository
}

func NewContentController(content *repository.ContentRepository) *ContentController {
	return &ContentController{Content: content}
}

// ListContent godoc
// @Summary List catalog content
// @Description Lists catalog items, optionally filtered by category
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Category filter"
// @Success 200 {object} util.Response{data=[]model.ContentItem} "Success"
// @Router /api/learning/content [get]
func (c *ContentController) ListContent(ctx *gin.Context) {
	var (
		items []model.ContentItem
		err   error
	)
	if category := ctx.Query("category"); category != "" {
		items, err = c.Content.ListByCategory(category)
	} else {
		items, err = c.Content.ListAll()
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// GetContent godoc
// @Summary Get one catalog item
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Content ID"
// @Success 200 {object} util.Response{data=model.ContentItem} "Success"
// @Failure 404 {object} util.Response "Content not found"
// @Router /api/learning/content/{id} [get]
func (c *ContentController) GetContent(ctx *gin.Context) {
	item, err := c.Content.FindByID(ctx.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.NotFound(ctx, "content not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, item)
}

// swagger:model CreateContentRequest
type CreateContentRequest struct {
	Title              string                `json:"title" binding:"required"`
	Type               model.MediumType      `json:"type" binding:"required,oneof=video reading interactive quiz project discussion"`
	Difficulty         model.DifficultyLevel `json:"difficulty" binding:"required,oneof=beginner intermediate advanced expert"`
	Duration           int                   `json:"duration" binding:"required,min=1"`
	Category           string                `json:"category"`
	Tags               []string              `json:"tags"`
	Prerequisites      []string              `json:"prerequisites"`
	LearningObjectives []string              `json:"learningObjectives"`
}

// CreateContent godoc
// @Summary Add a catalog item
// @Description Adds a new item to the content catalog (teacher or admin only)
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateContentRequest true "Content item"
// @Success 201 {object} util.Response{data=model.ContentItem} "Created"
// @Failure 400 {object} util.Response "Invalid request"
// @Failure 403 {object} util.Response "Forbidden"
// @Router /api/learning/content [post]
func (c *ContentController) CreateContent(ctx *gin.Context) {
	var req CreateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item := model.ContentItem{
		Title:              req.Title,
		Type:               req.Type,
		Difficulty:         req.Difficulty,
		Duration:           req.Duration,
		Category:           req.Category,
		Tags:               model.StringList(req.Tags),
		Prerequisites:      model.StringList(req.Prerequisites),
		LearningObjectives: model.StringList(req.LearningObjectives),
	}
	if err := c.Content.Create(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, item)
}
