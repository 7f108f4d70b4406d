package repositories

import (
	"github.com/LilMortal/Feastly-App/internal/models"
)

// CafeRepository defines the interface for café data access. Cafés are
// reference data: Create exists only for seeding at startup.
type CafeRepository interface {
	GetAll() ([]models.Cafe, error)
	GetByID(id int) (*models.Cafe, error)
	Create(cafe *models.Cafe) error
}
