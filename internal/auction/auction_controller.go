package auction

import (
	"net/http"
	"time"

	"github.com/RonakJoshi-17/crickboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// AuctionController handles auction-related HTTP requests
type AuctionController struct {
	repo AuctionRepository
}

// NewAuctionController creates a new auction controller
func NewAuctionController(repo AuctionRepository) *AuctionController {
	return &AuctionController{repo: repo}
}

// CreateAuctionRequest defines the request payload for creating an auction
type CreateAuctionRequest struct {
	TournamentID uint      `json:"tournament_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	PlayerIDs    []uint    `json:"player_ids,omitempty"`
}

// GetAuctions godoc
// @Summary List all auctions
// @Tags auctions
// @Produce json
// @Success 200 {array} Auction
// @Router /auctions [get]
func (ac *AuctionController) GetAuctions(c *gin.Context) {
	auctions, err := ac.repo.GetAuctions()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch auctions: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, auctions)
}

// CreateAuction godoc
// @Summary Create an auction window for a tournament
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAuctionRequest true "Auction details"
// @Success 201 {object} Auction
// @Router /auctions [post]
func (ac *AuctionController) CreateAuction(c *gin.Context) {
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if !req.EndTime.After(req.StartTime) {
		responses.ErrorResponse(c, http.StatusBadRequest, "End time must be after start time")
		return
	}

	auction := Auction{
		TournamentID: req.TournamentID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	for _, playerID := range req.PlayerIDs {
		auction.Players = append(auction.Players, AuctionLot{PlayerID: playerID})
	}

	if err := ac.repo.CreateAuction(&auction); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create auction: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Auction created successfully",
		"auction": auction,
	})
}
