package auth

import (
	"net/http"

	"github.com/RonakJoshi-17/crickboard/config"
	"github.com/RonakJoshi-17/crickboard/internal/middleware"
	"github.com/RonakJoshi-17/crickboard/pkg/responses"
	"github.com/RonakJoshi-17/crickboard/pkg/token"
	"github.com/RonakJoshi-17/crickboard/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles scorer-account HTTP requests
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

// NewAuthController creates a new auth controller
func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

// Register godoc
// @Summary Register a scorer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	existing, err := ac.repo.GetScorerByUsername(req.Username)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check username: "+err.Error())
		return
	}
	if existing != nil {
		responses.ErrorResponse(c, http.StatusConflict, "Username already taken")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	scorer := Scorer{
		Name:     req.Name,
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}
	if scorer.Role == "" {
		scorer.Role = "scorer"
	}

	if err := ac.repo.CreateScorer(&scorer); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create account: "+err.Error())
		return
	}

	accessToken, err := token.GenerateJWT(scorer.ID, scorer.Role, ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, AuthResponse{
		AccessToken: accessToken,
		Scorer:      FilterScorerRecord(&scorer),
	})
}

// Login godoc
// @Summary Log in with a scorer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	scorer, err := ac.repo.GetScorerByUsername(req.Username)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch account: "+err.Error())
		return
	}
	if scorer == nil || !utils.CheckPassword(scorer.Password, req.Password) {
		responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	accessToken, err := token.GenerateJWT(scorer.ID, scorer.Role, ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		Scorer:      FilterScorerRecord(scorer),
	})
}

// GetProfile godoc
// @Summary Current scorer profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScorerResponse
// @Router /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	scorer, err := ac.repo.GetScorerByID(userID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch account: "+err.Error())
		return
	}
	if scorer == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Account not found")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, FilterScorerRecord(scorer))
}
