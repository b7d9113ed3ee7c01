package app

import (
	"edupath_backend/docs"
	"edupath_backend/internal/config"
	"edupath_backend/internal/middleware"
	"edupath_backend/internal/model"
	"edupath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		a.registerLearningRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerLearningRoutes(rg *gin.RouterGroup, c *controllers) {
	learning := rg.Group("/learning")
	{
		// content catalog
		learning.GET("/content", c.content.ListContent)
		learning.GET("/content/:id", c.content.GetContent)
		learning.POST("/content", middleware.RoleMiddleware(model.Teacher, model.Admin), c.content.CreateContent)

		// learner profiles
		learning.GET("/profiles/:learnerId", c.profile.GetLearningProfile)
		learning.PUT("/profiles/:learnerId", c.profile.UpdateLearningProfile)

		// paths and progress
		learning.POST("/paths", c.path.GeneratePath)
		learning.GET("/paths/:id", c.path.GetPath)
		learning.POST("/paths/:id/modules/:moduleId/progress", c.path.UpdateModuleProgress)
		learning.POST("/paths/:id/pacing", c.adaptive.OptimizePacing)
		learning.GET("/learners/:learnerId/paths", c.path.ListLearnerPaths)
		learning.GET("/learners/:learnerId/sessions", c.path.GetSessionHistory)

		// adaptive content
		learning.POST("/adapt", c.adaptive.AdaptContent)
		learning.POST("/personalize", c.adaptive.GeneratePersonalizedContent)

		// recommendations and analytics
		learning.POST("/recommendations/next-step", c.recommendation.RecommendNextStep)
		learning.POST("/interventions", c.recommendation.SuggestInterventions)
		learning.GET("/learners/:learnerId/modules/:moduleId/prediction", c.recommendation.PredictPerformance)
		learning.GET("/learners/:learnerId/modules/:moduleId/mastery", c.recommendation.AssessMastery)
		learning.GET("/learners/:learnerId/gaps", c.recommendation.DetectLearningGaps)
	}
}
