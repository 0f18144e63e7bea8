package auth

import (
	"errors"

	"gorm.io/gorm"
)

// AuthRepository defines methods to interact with scorer accounts
type AuthRepository interface {
	CreateScorer(scorer *Scorer) error
	GetScorerByUsername(username string) (*Scorer, error)
	GetScorerByID(id uint) (*Scorer, error)
}

// GormAuthRepository implements AuthRepository using GORM
type GormAuthRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new GormAuthRepository
func NewAuthRepository(db *gorm.DB) *GormAuthRepository {
	return &GormAuthRepository{db: db}
}

func (r *GormAuthRepository) CreateScorer(scorer *Scorer) error {
	return r.db.Create(scorer).Error
}

func (r *GormAuthRepository) GetScorerByUsername(username string) (*Scorer, error) {
	var scorer Scorer
	result := r.db.Where("username = ?", username).First(&scorer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &scorer, nil
}

func (r *GormAuthRepository) GetScorerByID(id uint) (*Scorer, error) {
	var scorer Scorer
	result := r.db.First(&scorer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &scorer, nil
}
