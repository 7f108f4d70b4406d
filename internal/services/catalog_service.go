package services

import (
	"errors"
	"time"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
)

// CatalogService serves the café catalog. It simulates a remote backend by
// sleeping a configured latency before touching the repository.
type CatalogService struct {
	repo    repositories.CafeRepository
	latency time.Duration
}

// NewCatalogService creates a new CatalogService. A zero latency disables the
// simulated delay, which is what tests use.
func NewCatalogService(repo repositories.CafeRepository, latency time.Duration) *CatalogService {
	return &CatalogService{
		repo:    repo,
		latency: latency,
	}
}

// GetAll retrieves the full café collection.
func (s *CatalogService) GetAll() ([]models.Cafe, error) {
	s.simulateLatency()
	return s.repo.GetAll()
}

// GetByID retrieves one café. An unknown id is not an error: it returns
// (nil, nil) so callers can store the absence as the selection.
func (s *CatalogService) GetByID(id int) (*models.Cafe, error) {
	s.simulateLatency()
	cafe, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cafe, nil
}

func (s *CatalogService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
