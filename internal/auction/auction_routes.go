package auction

import (
	"github.com/RonakJoshi-17/crickboard/config"
	mw "github.com/RonakJoshi-17/crickboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuctionRoutes sets up all auction-related routes.
func AuctionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGormAuctionRepository(db)
	controller := NewAuctionController(repo)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", controller.GetAuctions)
	}

	protected := router.Group("/auctions")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		protected.POST("", controller.CreateAuction)
	}
}
