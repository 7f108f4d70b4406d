package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// MockCafeRepository is an in-memory implementation of CafeRepository.
type MockCafeRepository struct {
	cafes  map[int]models.Cafe
	nextID int
	mu     sync.RWMutex
}

// NewMockCafeRepository creates a new instance of MockCafeRepository.
func NewMockCafeRepository() *MockCafeRepository {
	return &MockCafeRepository{
		cafes:  make(map[int]models.Cafe),
		nextID: 1,
	}
}

// GetAll returns all cafés ordered by id, which preserves seed order.
func (r *MockCafeRepository) GetAll() ([]models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.cafes))
	for id := range r.cafes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cafeList := make([]models.Cafe, 0, len(ids))
	for _, id := range ids {
		cafeList = append(cafeList, r.cafes[id])
	}
	return cafeList, nil
}

// GetByID returns a café by its ID.
func (r *MockCafeRepository) GetByID(id int) (*models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[id]
	if !ok {
		return nil, fmt.Errorf("cafe with ID %d: %w", id, ErrNotFound)
	}
	return &cafe, nil
}

// Create adds a new café, assigning the next numeric id when none is set.
func (r *MockCafeRepository) Create(cafe *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cafe.ID == 0 {
		cafe.ID = r.nextID
	}
	if cafe.ID >= r.nextID {
		r.nextID = cafe.ID + 1
	}
	r.cafes[cafe.ID] = *cafe
	return nil
}
