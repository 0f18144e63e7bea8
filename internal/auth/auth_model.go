package auth

import (
	"time"

	"gorm.io/gorm"
)

// Scorer is an admin-panel account allowed to mutate live matches. It replaces
// the shared-password gate the old admin panel used.
type Scorer struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"default:'scorer'" json:"role"` // "scorer" or "admin"
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=30" example:"ronak_j"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=scorer admin"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ronak_j"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	Scorer      ScorerResponse `json:"scorer"`
}

type ScorerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterScorerRecord(s *Scorer) ScorerResponse {
	return ScorerResponse{
		ID:        s.ID,
		Name:      s.Name,
		Username:  s.Username,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
	}
}
