package team

import (
	"gorm.io/gorm"
)

// Team represents a cricket team and its squad.
type Team struct {
	gorm.Model
	Name         string   `json:"name" gorm:"not null"`
	TournamentID *uint    `json:"tournament_id,omitempty" gorm:"index"`
	Players      []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// Player is a squad member. Live-match batting/bowling figures are tracked on
// the match aggregate, not here.
type Player struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	TeamID   uint   `json:"team_id" gorm:"index;not null"`
	Position string `json:"position,omitempty"`
}
