package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// TournamentRepository defines methods to interact with tournament data
type TournamentRepository interface {
	CreateTournament(tournament *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournaments() ([]Tournament, error)
}

// GormTournamentRepository implements TournamentRepository using GORM
type GormTournamentRepository struct {
	db *gorm.DB
}

// NewGormTournamentRepository creates a new GormTournamentRepository
func NewGormTournamentRepository(db *gorm.DB) *GormTournamentRepository {
	return &GormTournamentRepository{db: db}
}

func (r *GormTournamentRepository) CreateTournament(tournament *Tournament) error {
	return r.db.Create(tournament).Error
}

func (r *GormTournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var tournament Tournament
	result := r.db.Preload("Teams.Players").First(&tournament, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tournament, nil
}

func (r *GormTournamentRepository) GetTournaments() ([]Tournament, error) {
	var tournaments []Tournament
	result := r.db.Preload("Teams").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}
	return tournaments, nil
}
