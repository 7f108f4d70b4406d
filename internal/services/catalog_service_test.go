package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LilMortal/Feastly-App/internal/repositories"
	"github.com/LilMortal/Feastly-App/internal/seed"
	"github.com/LilMortal/Feastly-App/internal/services"
)

func newCatalogService(t *testing.T) *services.CatalogService {
	t.Helper()
	repo := repositories.NewMockCafeRepository()
	for _, cafe := range seed.Cafes() {
		c := cafe
		assert.NoError(t, repo.Create(&c))
	}
	return services.NewCatalogService(repo, 0)
}

func TestCatalogService_GetAll(t *testing.T) {
	service := newCatalogService(t)

	cafes, err := service.GetAll()
	assert.NoError(t, err)
	assert.Len(t, cafes, 5)
	// Seed order is preserved
	assert.Equal(t, "The Crumby Café", cafes[0].Name)
	assert.Equal(t, "Sweet Moments", cafes[4].Name)
}

func TestCatalogService_GetByID(t *testing.T) {
	service := newCatalogService(t)

	cafe, err := service.GetByID(3)
	assert.NoError(t, err)
	assert.NotNil(t, cafe)
	assert.Equal(t, "Rustic Bean", cafe.Name)
	assert.Len(t, cafe.TimeSlots, 6)

	// An unknown id is stored absence, not an error
	cafe, err = service.GetByID(99)
	assert.NoError(t, err)
	assert.Nil(t, cafe)
}
