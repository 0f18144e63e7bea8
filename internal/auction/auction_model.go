package auction

import (
	"time"

	"gorm.io/gorm"
)

// Auction is a player-auction window attached to a tournament.
type Auction struct {
	gorm.Model
	TournamentID uint         `json:"tournament_id" gorm:"index;not null"`
	StartTime    time.Time    `json:"start_time" gorm:"not null"`
	EndTime      time.Time    `json:"end_time" gorm:"not null"`
	Players      []AuctionLot `json:"players,omitempty" gorm:"foreignKey:AuctionID"`
}

// AuctionLot is one player listed in an auction.
type AuctionLot struct {
	gorm.Model
	AuctionID uint `json:"auction_id" gorm:"index;not null"`
	PlayerID  uint `json:"player_id" gorm:"index;not null"`
}
