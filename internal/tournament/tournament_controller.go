package tournament

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RonakJoshi-17/crickboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TournamentController handles tournament-related HTTP requests
type TournamentController struct {
	repo TournamentRepository
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

// CreateTournamentRequest defines the request payload for creating a tournament
type CreateTournamentRequest struct {
	Name string    `json:"name" binding:"required,min=3,max=200"`
	Date time.Time `json:"date" binding:"required"`
}

// GetTournaments godoc
// @Summary List all tournaments
// @Tags tournaments
// @Produce json
// @Success 200 {array} Tournament
// @Router /tournaments [get]
func (tc *TournamentController) GetTournaments(c *gin.Context) {
	tournaments, err := tc.repo.GetTournaments()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tournaments: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusOK, tournaments)
}

// GetTournamentByID godoc
// @Summary Get a tournament by ID
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} Tournament
// @Router /tournaments/{id} [get]
func (tc *TournamentController) GetTournamentByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid tournament ID")
		return
	}

	tournament, err := tc.repo.GetTournamentByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tournament: "+err.Error())
		return
	}
	if tournament == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Tournament not found")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, tournament)
}

// CreateTournament godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTournamentRequest true "Tournament details"
// @Success 201 {object} Tournament
// @Router /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	tournament := Tournament{
		Name: req.Name,
		Date: req.Date,
	}
	if err := tc.repo.CreateTournament(&tournament); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create tournament: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message":    "Tournament created successfully",
		"tournament": tournament,
	})
}
