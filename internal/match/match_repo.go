package match

import (
	"errors"

	"gorm.io/gorm"
)

type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches() ([]Match, error)
	GetMatchesPaginated(page, pageSize int) ([]Match, int64, error)
	UpdateMatch(match *Match) error
}

type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) MatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	err := r.db.
		Preload("Team1.Players").
		Preload("Team2.Players").
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) GetMatches() ([]Match, error) {
	var matches []Match
	err := r.db.
		Preload("Team1.Players").
		Preload("Team2.Players").
		Order("scheduled_at DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormMatchRepository) GetMatchesPaginated(page, pageSize int) ([]Match, int64, error) {
	var total int64
	if err := r.db.Model(&Match{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var matches []Match
	err := r.db.
		Preload("Team1.Players").
		Preload("Team2.Players").
		Order("scheduled_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) UpdateMatch(match *Match) error {
	return r.db.Save(match).Error
}
