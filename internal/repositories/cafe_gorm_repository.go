package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// GORMCafeRepository is a GORM implementation of CafeRepository.
type GORMCafeRepository struct {
	db *gorm.DB
}

// NewGORMCafeRepository creates a new instance of GORMCafeRepository.
func NewGORMCafeRepository(db *gorm.DB) *GORMCafeRepository {
	return &GORMCafeRepository{
		db: db,
	}
}

// GetAll retrieves all cafés from the database, ordered by id.
func (r *GORMCafeRepository) GetAll() ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cafes: %w", err)
	}
	return cafes, nil
}

// GetByID retrieves a single café by its ID from the database.
func (r *GORMCafeRepository) GetByID(id int) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := r.db.First(&cafe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cafe with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cafe by ID %d: %w", id, err)
	}
	return &cafe, nil
}

// Create creates a new café in the database.
func (r *GORMCafeRepository) Create(cafe *models.Cafe) error {
	if err := r.db.Create(cafe).Error; err != nil {
		return fmt.Errorf("failed to create cafe: %w", err)
	}
	return nil
}
