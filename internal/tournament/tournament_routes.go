package tournament

import (
	"github.com/RonakJoshi-17/crickboard/config"
	mw "github.com/RonakJoshi-17/crickboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TournamentRoutes sets up all tournament-related routes.
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGormTournamentRepository(db)
	controller := NewTournamentController(repo)

	tournaments := router.Group("/tournaments")
	{
		tournaments.GET("", controller.GetTournaments)
		tournaments.GET("/:id", controller.GetTournamentByID)
	}

	protected := router.Group("/tournaments")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("", controller.CreateTournament)
	}
}
