package stores

import (
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// AuthService is the slice of the auth backend the auth store uses.
type AuthService interface {
	Login(email, password string) (*models.User, error)
	Signup(name, email, password string) (*models.User, error)
	Logout()
	UpdateProfile(id int, updates models.ProfileUpdate) (*models.User, error)
	GetCurrentUser() *models.User
}

// AuthStore holds the session identity. At most one user is current at a
// time.
type AuthStore struct {
	mu            sync.Mutex
	user          *models.User
	authenticated bool
	loading       bool

	service  AuthService
	notifier Notifier
}

// NewAuthStore creates a new AuthStore.
func NewAuthStore(service AuthService, notifier Notifier) *AuthStore {
	return &AuthStore{
		service:  service,
		notifier: notifier,
	}
}

// Login authenticates by email. An unknown email returns false with no toast;
// the caller surfaces a form error. A service failure emits an error toast.
func (s *AuthStore) Login(email, password string) bool {
	s.setLoading(true)

	user, err := s.service.Login(email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to login. Please check your credentials")
		return false
	}
	if user == nil {
		return false
	}

	s.user = user
	s.authenticated = true
	s.notifier.Notify(models.ToastSuccess, "Successfully logged in")
	return true
}

// Signup creates an account and signs the new user in. Duplicate emails are
// not rejected.
func (s *AuthStore) Signup(name, email, password string) bool {
	s.setLoading(true)

	user, err := s.service.Signup(name, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to create account")
		return false
	}

	s.user = user
	s.authenticated = true
	s.notifier.Notify(models.ToastSuccess, "Account created successfully")
	return true
}

// Logout clears the persisted and held identity. Synchronous, cannot fail.
func (s *AuthStore) Logout() {
	s.service.Logout()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.notifier.Notify(models.ToastInfo, "You have been logged out")
}

// UpdateProfile merges partial fields into the current user. Without a
// current user it returns false immediately, making no network call.
func (s *AuthStore) UpdateProfile(updates models.ProfileUpdate) bool {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()
	if current == nil {
		return false
	}

	s.setLoading(true)

	user, err := s.service.UpdateProfile(current.ID, updates)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to update profile")
		return false
	}
	if user == nil {
		// No persisted record to merge into.
		s.notifier.Notify(models.ToastError, "Failed to update profile")
		return false
	}

	s.user = user
	s.notifier.Notify(models.ToastSuccess, "Profile updated successfully")
	return true
}

// CheckAuth restores a prior session from persisted state, synchronously and
// with no network round trip. Used once at process start.
func (s *AuthStore) CheckAuth() {
	user := s.service.GetCurrentUser()
	if user == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.authenticated = true
}

// User returns the current user, nil when signed out.
func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a session is active.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated
}

// IsLoading reports whether an action is in flight.
func (s *AuthStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *AuthStore) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}
