package stores

import (
	"strings"
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// CatalogService is the slice of the catalog backend the café store uses.
type CatalogService interface {
	GetAll() ([]models.Cafe, error)
	GetByID(id int) (*models.Cafe, error)
}

// Filters is the ephemeral catalog filter state. A nil Rating means no
// minimum; an empty Search matches everything.
type Filters struct {
	Rating *float64 `json:"rating"`
	Search string   `json:"search"`
}

// CafeStore holds the café collection, the selected detail record, and the
// filter state.
type CafeStore struct {
	mu       sync.Mutex
	cafes    []models.Cafe
	selected *models.Cafe
	loading  bool
	filters  Filters

	catalog  CatalogService
	notifier Notifier
}

// NewCafeStore creates a new CafeStore.
func NewCafeStore(catalog CatalogService, notifier Notifier) *CafeStore {
	return &CafeStore{
		catalog:  catalog,
		notifier: notifier,
	}
}

// FetchCafes replaces the held collection from the catalog service. On
// failure it emits an error toast and leaves the prior collection intact.
func (s *CafeStore) FetchCafes() {
	s.setLoading(true)

	cafes, err := s.catalog.GetAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to fetch cafés")
		return
	}
	s.cafes = cafes
}

// FetchCafeByID loads one café as the selection. An unknown id stores the
// absence (nil selection) without a toast; a service failure emits an error
// toast.
func (s *CafeStore) FetchCafeByID(id int) {
	s.setLoading(true)

	cafe, err := s.catalog.GetByID(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to fetch café details")
		return
	}
	s.selected = cafe
}

// SetRatingFilter merges a minimum rating into the filter state. nil clears
// the threshold.
func (s *CafeStore) SetRatingFilter(min *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Rating = min
}

// SetSearchFilter merges a search term into the filter state.
func (s *CafeStore) SetSearchFilter(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.Search = term
}

// ResetFilters restores the filter state to no minimum rating and an empty
// search. Calling it twice in a row is the same as calling it once.
func (s *CafeStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = Filters{}
}

// FilteredCafes derives the visible collection from the current snapshot. It
// is recomputed on every call and never cached: a café is included iff its
// rating meets the threshold (inclusive) and its name contains the search
// term case-insensitively. Collection order is preserved.
func (s *CafeStore) FilteredCafes() []models.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(s.filters.Search)
	filtered := make([]models.Cafe, 0, len(s.cafes))
	for _, cafe := range s.cafes {
		if s.filters.Rating != nil && cafe.Rating < *s.filters.Rating {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(cafe.Name), search) {
			continue
		}
		filtered = append(filtered, cafe)
	}
	return filtered
}

// Cafes returns the unfiltered collection.
func (s *CafeStore) Cafes() []models.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Cafe(nil), s.cafes...)
}

// SelectedCafe returns the current detail selection, nil when absent.
func (s *CafeStore) SelectedCafe() *models.Cafe {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

// IsLoading reports whether a fetch is in flight.
func (s *CafeStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Filters returns the current filter state.
func (s *CafeStore) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

func (s *CafeStore) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}
