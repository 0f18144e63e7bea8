package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RonakJoshi-17/crickboard/internal/team"
	"github.com/RonakJoshi-17/crickboard/pkg/responses"
	"github.com/gin-gonic/gin"
)

// Notifier pushes score updates to live subscribers. Satisfied by live.Hub.
type Notifier interface {
	ScoreUpdate(matchID uint, match interface{})
	ScoreUpdateAll(matches interface{})
}

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo     MatchRepository
	teamRepo team.TeamRepository
	notifier Notifier
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, notifier Notifier) *MatchController {
	return &MatchController{
		repo:     repo,
		teamRepo: teamRepo,
		notifier: notifier,
	}
}

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for scheduling a match
type CreateMatchRequest struct {
	Team1ID uint `json:"team1_id" binding:"required"`
	Team2ID uint `json:"team2_id" binding:"required"`
	Overs   int  `json:"overs" binding:"required,min=1,max=50"`
}

// DecideBattingTeamRequest records the toss outcome
type DecideBattingTeamRequest struct {
	CurrentBattingTeam string `json:"currentBattingTeam" binding:"required"`
}

// scoringErrorStatus maps processor errors onto HTTP statuses. Unknown errors
// fall through to 500.
func scoringErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrPlayerNotInSquad):
		return http.StatusNotFound
	case errors.Is(err, ErrPlayersNotSet),
		errors.Is(err, ErrBattingTeamDecided),
		errors.Is(err, ErrBattingTeamNotSet),
		errors.Is(err, ErrNothingToUndo):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidEvent),
		errors.Is(err, ErrMissingWicketType),
		errors.Is(err, ErrInvalidWicketType),
		errors.Is(err, ErrInvalidBattingTeam),
		errors.Is(err, ErrNoPlayersGiven),
		errors.Is(err, ErrEmptyPlayerName),
		errors.Is(err, ErrNegativeRuns),
		errors.Is(err, ErrStrikerNotSet),
		errors.Is(err, ErrDuplicateBatsman):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// loadMatch parses the :id param and fetches the aggregate, writing the error
// response itself when it fails.
func (mc *MatchController) loadMatch(c *gin.Context) *Match {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return nil
	}
	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch match: "+err.Error())
		return nil
	}
	if m == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
		return nil
	}
	return m
}

// saveAndBroadcast persists the aggregate and pushes it to live subscribers.
func (mc *MatchController) saveAndBroadcast(c *gin.Context, m *Match) bool {
	if err := mc.repo.UpdateMatch(m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to save match: "+err.Error())
		return false
	}
	mc.notifier.ScoreUpdate(m.ID, m)
	return true
}

// CreateMatch godoc
// @Summary Schedule a match between two teams
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMatchRequest true "Match details"
// @Success 201 {object} Match
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if req.Team1ID == req.Team2ID {
		responses.ErrorResponse(c, http.StatusBadRequest, "A team cannot play against itself")
		return
	}

	for _, teamID := range []uint{req.Team1ID, req.Team2ID} {
		t, err := mc.teamRepo.GetTeamByID(teamID)
		if err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
			return
		}
		if t == nil {
			responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
			return
		}
	}

	m := Match{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Overs:   req.Overs,
		Status:  StatusScheduled,
		// Roster stat lines are populated on reset; a freshly scheduled match
		// starts with empty player lists.
		Score:       Score{Team1: TeamScore{Players: []PlayerStat{}}, Team2: TeamScore{Players: []PlayerStat{}}},
		BallByBall:  BallLog{},
		ScheduledAt: time.Now(),
	}
	if err := mc.repo.CreateMatch(&m); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	created, err := mc.repo.GetMatchByID(m.ID)
	if err != nil || created == nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch created match")
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Match created successfully",
		"match":   created,
	})
}

// GetMatches godoc
// @Summary List matches with teams and rosters, newest first
// @Tags matches
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {array} Match
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	matches, total, err := mc.repo.GetMatchesPaginated(page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, matches, page, pageSize, total)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} Match
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	m := mc.loadMatch(c)
	if m == nil {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, m)
}

// DecideBattingTeam godoc
// @Summary Record the toss outcome and start the match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param request body DecideBattingTeamRequest true "Batting side, team1 or team2"
// @Success 200 {object} Match
// @Failure 409 {object} map[string]interface{} "Batting team already decided"
// @Router /matches/{id} [patch]
func (mc *MatchController) DecideBattingTeam(c *gin.Context) {
	var req DecideBattingTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m := mc.loadMatch(c)
	if m == nil {
		return
	}

	if err := m.DecideBattingTeam(req.CurrentBattingTeam); err != nil {
		responses.ErrorResponse(c, scoringErrorStatus(err), err.Error())
		return
	}

	if !mc.saveAndBroadcast(c, m) {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Batting team decided",
		"match":   m,
	})
}

// SetPlayers godoc
// @Summary Assign the striker, non-striker and bowler
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param request body PlayerSelection true "Players to assign, any subset"
// @Success 200 {object} Match
// @Failure 404 {object} map[string]interface{} "Player not found in squad"
// @Router /matches/{id}/players [post]
func (mc *MatchController) SetPlayers(c *gin.Context) {
	var sel PlayerSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m := mc.loadMatch(c)
	if m == nil {
		return
	}

	if err := m.ApplyPlayerSelection(sel); err != nil {
		responses.ErrorResponse(c, scoringErrorStatus(err), err.Error())
		return
	}

	if !mc.saveAndBroadcast(c, m) {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Players updated",
		"match":   m,
	})
}

// RecordDelivery godoc
// @Summary Record one ball against the batting side
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param request body DeliveryInput true "Ball event"
// @Success 200 {object} Match
// @Failure 400 {object} map[string]interface{} "Invalid event"
// @Failure 409 {object} map[string]interface{} "Players not set"
// @Router /matches/{id}/deliveries [post]
func (mc *MatchController) RecordDelivery(c *gin.Context) {
	var in DeliveryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	m := mc.loadMatch(c)
	if m == nil {
		return
	}

	if err := m.ApplyDelivery(in); err != nil {
		responses.ErrorResponse(c, scoringErrorStatus(err), err.Error())
		return
	}

	if !mc.saveAndBroadcast(c, m) {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Ball recorded",
		"match":   m,
	})
}

// UndoLastBall godoc
// @Summary Undo the most recently recorded ball
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} Match
// @Failure 409 {object} map[string]interface{} "No balls recorded yet"
// @Router /matches/{id}/ball [delete]
func (mc *MatchController) UndoLastBall(c *gin.Context) {
	m := mc.loadMatch(c)
	if m == nil {
		return
	}

	removed, err := m.UndoLastDelivery()
	if err != nil {
		responses.ErrorResponse(c, scoringErrorStatus(err), err.Error())
		return
	}

	if !mc.saveAndBroadcast(c, m) {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message":     "Last ball undone",
		"match":       m,
		"removedBall": removed,
	})
}

// ResetMatch godoc
// @Summary Reset a match back to a fresh scorecard
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} Match
// @Router /matches/{id}/reset [post]
func (mc *MatchController) ResetMatch(c *gin.Context) {
	m := mc.loadMatch(c)
	if m == nil {
		return
	}

	m.ResetScorecard()

	if !mc.saveAndBroadcast(c, m) {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Match reset successfully",
		"match":   m,
	})
}

// ResetAllMatches godoc
// @Summary Reset every match back to a fresh scorecard
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Match
// @Router /matches/reset-all [post]
func (mc *MatchController) ResetAllMatches(c *gin.Context) {
	matches, err := mc.repo.GetMatches()
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}

	for i := range matches {
		matches[i].ResetScorecard()
		if err := mc.repo.UpdateMatch(&matches[i]); err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to reset match: "+err.Error())
			return
		}
		mc.notifier.ScoreUpdate(matches[i].ID, &matches[i])
	}
	mc.notifier.ScoreUpdateAll(matches)

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "All matches reset successfully",
		"matches": matches,
	})
}
