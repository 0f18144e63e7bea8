package match

import (
	"github.com/RonakJoshi-17/crickboard/config"
	mw "github.com/RonakJoshi-17/crickboard/internal/middleware"
	"github.com/RonakJoshi-17/crickboard/internal/team"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match and scoring routes. Reads are public so
// scoreboard frontends can poll without a token; every mutation requires a
// scorer token.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, teamRepo team.TeamRepository, notifier Notifier) {
	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo, notifier)

	matches := router.Group("/matches")
	{
		matches.GET("", matchController.GetMatches)
		matches.GET("/:id", matchController.GetMatchByID)
	}

	protected := router.Group("/matches")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("", matchController.CreateMatch)
		protected.POST("/reset-all", mw.AdminMiddleware(), matchController.ResetAllMatches)
		protected.PATCH("/:id", matchController.DecideBattingTeam)
		protected.POST("/:id/players", matchController.SetPlayers)
		protected.POST("/:id/deliveries", matchController.RecordDelivery)
		protected.DELETE("/:id/ball", matchController.UndoLastBall)
		protected.POST("/:id/reset", matchController.ResetMatch)
	}
}
