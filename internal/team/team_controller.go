package team

import (
	"net/http"
	"strconv"

	"github.com/RonakJoshi-17/crickboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

// CreateTeamRequest defines the request payload for creating a team
type CreateTeamRequest struct {
	Name         string   `json:"name" binding:"required,min=2,max=100"`
	TournamentID *uint    `json:"tournament_id,omitempty"`
	Players      []string `json:"players,omitempty"`
}

// AddPlayerRequest defines the request payload for adding a roster entry
type AddPlayerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Position string `json:"position,omitempty"`
}

// GetTeams godoc
// @Summary List all teams with rosters
// @Tags teams
// @Produce json
// @Success 200 {array} Team
// @Failure 404 {object} map[string]interface{}
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	teams, err := tc.repo.GetTeams()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch teams: "+err.Error())
		return
	}
	if len(teams) == 0 {
		responses.ErrorResponse(c, http.StatusNotFound, "No teams found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, teams)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} Team
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, team)
}

// CreateTeam godoc
// @Summary Create a team, optionally with an initial roster
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTeamRequest true "Team details"
// @Success 201 {object} Team
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	team := Team{
		Name:         req.Name,
		TournamentID: req.TournamentID,
	}
	for _, name := range req.Players {
		team.Players = append(team.Players, Player{Name: name})
	}

	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Team created successfully",
		"team":    team,
	})
}

// AddPlayer godoc
// @Summary Add a player to a team's roster
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body AddPlayerRequest true "Player details"
// @Success 201 {object} Player
// @Router /teams/{id}/players [post]
func (tc *TeamController) AddPlayer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	player := Player{
		Name:     req.Name,
		TeamID:   team.ID,
		Position: req.Position,
	}
	if err := tc.repo.AddPlayer(&player); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to add player: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Player added successfully",
		"player":  player,
	})
}

// DeleteTeam godoc
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	if err := tc.repo.DeleteTeam(uint(id)); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete team: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Team deleted successfully",
	})
}
