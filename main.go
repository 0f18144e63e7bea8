package main

import (
	"log"

	"github.com/RonakJoshi-17/crickboard/config"
	_ "github.com/RonakJoshi-17/crickboard/docs"
	"github.com/RonakJoshi-17/crickboard/internal/auction"
	"github.com/RonakJoshi-17/crickboard/internal/auth"
	"github.com/RonakJoshi-17/crickboard/internal/live"
	"github.com/RonakJoshi-17/crickboard/internal/match"
	"github.com/RonakJoshi-17/crickboard/internal/team"
	"github.com/RonakJoshi-17/crickboard/internal/tournament"
	"github.com/RonakJoshi-17/crickboard/routes"
)

// @title Crickboard REST API
// @version 1.0
// @description Live cricket scoring backend 🏏
// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&auth.Scorer{},
		&team.Team{}, &team.Player{},
		&tournament.Tournament{},
		&auction.Auction{}, &auction.AuctionLot{},
		&match.Match{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	hub := live.NewHub()
	r := routes.SetupRoutes(config.DB, cfg, hub)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
