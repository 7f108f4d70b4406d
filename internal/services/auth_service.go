package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
	"github.com/LilMortal/Feastly-App/internal/storage"
)

// AuthService handles identity: login, signup, profile updates, and the
// persisted session record. Login is demo-grade: the password is accepted but
// never verified against the stored hash.
type AuthService struct {
	userRepo   repositories.UserRepository
	store      storage.Store
	jwtSecret  []byte
	tokenDurat time.Duration
	latency    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, store storage.Store, jwtSecret string, latency time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		store:      store,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		latency:    latency,
	}
}

// Login looks up a user by exact email match and persists the session on a
// hit. An unknown email returns (nil, nil); the password goes unchecked.
func (s *AuthService) Login(email, _ string) (*models.User, error) {
	s.simulateLatency()

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.persistUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup creates a new account with empty phone and address. There is no
// uniqueness check against existing emails. The password is hashed and
// stored, though login never compares against it.
func (s *AuthService) Signup(name, email, password string) (*models.User, error) {
	s.simulateLatency()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.persistUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the persisted session. Synchronous, cannot fail from the
// caller's point of view; storage errors are only logged.
func (s *AuthService) Logout() {
	if err := s.store.Delete(storage.KeyUser); err != nil {
		log.Printf("Failed to clear persisted session: %v", err)
	}
}

// UpdateProfile merges the partial fields into the persisted session record.
// It returns (nil, nil) when no session record is persisted.
func (s *AuthService) UpdateProfile(id int, updates models.ProfileUpdate) (*models.User, error) {
	s.simulateLatency()

	user := s.GetCurrentUser()
	if user == nil || user.ID != id {
		return nil, nil
	}

	updates.Apply(user)
	if err := s.persistUser(user); err != nil {
		return nil, err
	}

	// Keep the backing record in sync where one exists. Accounts restored
	// from a previous run may not be in the repository.
	if err := s.userRepo.Update(user); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Failed to update user %d in repository: %v", id, err)
	}
	return user, nil
}

// GetCurrentUser reads the persisted session synchronously, with no simulated
// round trip. It returns nil when no session is persisted.
func (s *AuthService) GetCurrentUser() *models.User {
	data, ok, err := s.store.Get(storage.KeyUser)
	if err != nil {
		log.Printf("Failed to read persisted session: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("Failed to decode persisted session: %v", err)
		return nil
	}
	return &user
}

// GenerateToken issues a JWT for the protected routes.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) persistUser(user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.store.Set(storage.KeyUser, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *AuthService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
