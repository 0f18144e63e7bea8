package auction

import (
	"gorm.io/gorm"
)

// AuctionRepository defines methods to interact with auction data
type AuctionRepository interface {
	CreateAuction(auction *Auction) error
	GetAuctions() ([]Auction, error)
}

// GormAuctionRepository implements AuctionRepository using GORM
type GormAuctionRepository struct {
	db *gorm.DB
}

// NewGormAuctionRepository creates a new GormAuctionRepository
func NewGormAuctionRepository(db *gorm.DB) *GormAuctionRepository {
	return &GormAuctionRepository{db: db}
}

func (r *GormAuctionRepository) CreateAuction(auction *Auction) error {
	return r.db.Create(auction).Error
}

func (r *GormAuctionRepository) GetAuctions() ([]Auction, error) {
	var auctions []Auction
	result := r.db.Preload("Players").Find(&auctions)
	if result.Error != nil {
		return nil, result.Error
	}
	return auctions, nil
}
