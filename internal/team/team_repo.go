package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines methods to interact with team and roster data
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeams() ([]Team, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error
	AddPlayer(player *Player) error
	RemovePlayer(playerID uint) error
}

// GormTeamRepository implements TeamRepository using GORM
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GormTeamRepository
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// CreateTeam creates a new team with any nested players
func (r *GormTeamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

// GetTeamByID retrieves a team with its roster
func (r *GormTeamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	result := r.db.Preload("Players").First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &team, nil
}

// GetTeams retrieves all teams with rosters
func (r *GormTeamRepository) GetTeams() ([]Team, error) {
	var teams []Team
	result := r.db.Preload("Players").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}
	return teams, nil
}

// UpdateTeam updates an existing team
func (r *GormTeamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

// DeleteTeam soft-deletes a team
func (r *GormTeamRepository) DeleteTeam(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}

// AddPlayer adds a player to a team's roster
func (r *GormTeamRepository) AddPlayer(player *Player) error {
	return r.db.Create(player).Error
}

// RemovePlayer soft-deletes a roster entry
func (r *GormTeamRepository) RemovePlayer(playerID uint) error {
	return r.db.Delete(&Player{}, playerID).Error
}
