package services_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
	"github.com/LilMortal/Feastly-App/internal/seed"
	"github.com/LilMortal/Feastly-App/internal/services"
	"github.com/LilMortal/Feastly-App/internal/storage"
)

func newAuthService(t *testing.T) (*services.AuthService, storage.Store) {
	t.Helper()

	kv, err := storage.NewFileStore(afero.NewMemMapFs(), "data")
	assert.NoError(t, err)

	userRepo := repositories.NewMockUserRepository()
	for _, user := range seed.Users() {
		u := user
		assert.NoError(t, userRepo.Create(&u))
	}

	return services.NewAuthService(userRepo, kv, "test_jwt_secret", 0), kv
}

func TestAuthService_Login(t *testing.T) {
	service, kv := newAuthService(t)

	// The password is accepted but never checked
	user, err := service.Login("jordsmith93@gmail.com", "anything")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Jordan Smith", user.Name)

	// A hit persists the session
	_, ok, err := kv.Get(storage.KeyUser)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, kv := newAuthService(t)

	user, err := service.Login("unknown@x.com", "x")
	assert.NoError(t, err, "an unknown email is a miss, not an error")
	assert.Nil(t, user)

	_, ok, err := kv.Get(storage.KeyUser)
	assert.NoError(t, err)
	assert.False(t, ok, "a miss must not persist a session")
}

func TestAuthService_Signup(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Signup("Sam Doe", "sam@example.com", "password123")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Sam Doe", user.Name)
	assert.Empty(t, user.Phone)
	assert.Empty(t, user.Address)

	// The password is hashed at rest even though login never compares it
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	// Signup signs the new account in
	current := service.GetCurrentUser()
	assert.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthService_Signup_DuplicateEmailAllowed(t *testing.T) {
	service, _ := newAuthService(t)

	first, err := service.Signup("Sam Doe", "sam@example.com", "password123")
	assert.NoError(t, err)
	second, err := service.Signup("Sam Doe", "sam@example.com", "password123")
	assert.NoError(t, err)

	// No uniqueness check: duplicate accounts are possible
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAuthService_Logout(t *testing.T) {
	service, kv := newAuthService(t)

	_, err := service.Login("jordsmith93@gmail.com", "x")
	assert.NoError(t, err)

	service.Logout()

	_, ok, err := kv.Get(storage.KeyUser)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, service.GetCurrentUser())
}

func TestAuthService_UpdateProfile(t *testing.T) {
	service, _ := newAuthService(t)

	// Without a persisted session the update is a miss
	phone := "07700 900099"
	user, err := service.UpdateProfile(1, models.ProfileUpdate{Phone: &phone})
	assert.NoError(t, err)
	assert.Nil(t, user)

	_, err = service.Login("jordsmith93@gmail.com", "x")
	assert.NoError(t, err)

	user, err = service.UpdateProfile(1, models.ProfileUpdate{Phone: &phone})
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, "Jordan Smith", user.Name, "untouched fields survive the merge")

	// The merge is persisted
	current := service.GetCurrentUser()
	assert.Equal(t, phone, current.Phone)
}

func TestAuthService_GetCurrentUser_RestoresSession(t *testing.T) {
	service, _ := newAuthService(t)

	assert.Nil(t, service.GetCurrentUser())

	logged, err := service.Login("marcpatel@yahoo.com", "x")
	assert.NoError(t, err)

	current := service.GetCurrentUser()
	assert.NotNil(t, current)
	assert.Equal(t, logged.ID, current.ID)
	assert.Equal(t, "Marcus Patel", current.Name)
}

func TestAuthService_Tokens(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Login("jordsmith93@gmail.com", "x")
	assert.NoError(t, err)

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])

	_, err = service.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
