package tournament

import (
	"time"

	"github.com/RonakJoshi-17/crickboard/internal/team"
	"gorm.io/gorm"
)

// Tournament groups teams and fixtures under one competition.
type Tournament struct {
	gorm.Model
	Name  string      `json:"name" gorm:"not null"`
	Date  time.Time   `json:"date" gorm:"not null"`
	Teams []team.Team `json:"teams,omitempty" gorm:"foreignKey:TournamentID"`
}
