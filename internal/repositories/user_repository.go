package repositories

import "github.com/LilMortal/Feastly-App/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	Update(user *models.User) error
}
