package team

import (
	"github.com/RonakJoshi-17/crickboard/config"
	mw "github.com/RonakJoshi-17/crickboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) TeamRepository {
	teamRepo := NewGormTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	// Public read routes
	teams := router.Group("/teams")
	{
		teams.GET("", teamController.GetTeams)
		teams.GET("/:id", teamController.GetTeamByID)
	}

	// Mutation routes require a scorer token
	protected := router.Group("/teams")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("", teamController.CreateTeam)
		protected.POST("/:id/players", teamController.AddPlayer)
		protected.DELETE("/:id", teamController.DeleteTeam)
	}

	return teamRepo
}
