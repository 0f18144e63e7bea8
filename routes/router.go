package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/RonakJoshi-17/crickboard/config"
	"github.com/RonakJoshi-17/crickboard/internal/auction"
	"github.com/RonakJoshi-17/crickboard/internal/auth"
	"github.com/RonakJoshi-17/crickboard/internal/live"
	"github.com/RonakJoshi-17/crickboard/internal/match"
	"github.com/RonakJoshi-17/crickboard/internal/team"
	"github.com/RonakJoshi-17/crickboard/internal/tournament"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config, hub *live.Hub) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Crickboard</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Crickboard scoring API 🏏</h1>
					<div><a href="/swagger/index.html">swagger</a></div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Live scoreboard subscriptions
	r.GET("/ws", gin.WrapH(hub.Handler()))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	teamRepo := team.TeamRoutes(api, db, appConfig)
	tournament.TournamentRoutes(api, db, appConfig)
	auction.AuctionRoutes(api, db, appConfig)
	match.MatchRoutes(api, db, appConfig, teamRepo, hub)

	return r
}
