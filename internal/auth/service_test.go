package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bookworm-app/bookworm/internal/config"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// fakeUserRepo is an in-memory UserRepository for service tests. The real
// repository is covered in internal/database/users.
type fakeUserRepo struct {
	byUsername map[string]*entities.User
	nextID     uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entities.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(username, passwordHash string) (*entities.User, error) {
	if _, exists := f.byUsername[username]; exists {
		return nil, errors.New("UNIQUE constraint failed: users.username")
	}
	user := &entities.User{ID: f.nextID, Username: username, PasswordHash: passwordHash}
	f.nextID++
	f.byUsername[username] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*entities.User, error) {
	if user, ok := f.byUsername[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByID(id uint) (*entities.User, error) {
	for _, user := range f.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testAuthConfig() config.Auth {
	return config.Auth{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		BcryptCost:  bcrypt.MinCost,
	}
}

func TestService_Register(t *testing.T) {
	service := NewService(newFakeUserRepo(), testAuthConfig())

	user, err := service.Register("reader123", "password123")

	require.NoError(t, err)
	assert.Equal(t, "reader123", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, CheckPassword("password123", user.PasswordHash))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	service := NewService(newFakeUserRepo(), testAuthConfig())

	_, err := service.Register("reader123", "password123")
	require.NoError(t, err)

	_, err = service.Register("reader123", "otherpassword")

	assert.Error(t, err)
}

func TestService_Login(t *testing.T) {
	service := NewService(newFakeUserRepo(), testAuthConfig())

	user, err := service.Register("reader123", "password123")
	require.NoError(t, err)

	token, err := service.Login("reader123", "password123")

	require.NoError(t, err)

	// The token decodes back to the registered user's id
	claims, err := ParseToken([]byte("test-secret"), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestService_Login_UnknownUser(t *testing.T) {
	service := NewService(newFakeUserRepo(), testAuthConfig())

	_, err := service.Login("nonexistent", "password123")

	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestService_Login_WrongPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), testAuthConfig())

	_, err := service.Register("reader123", "password123")
	require.NoError(t, err)

	_, err = service.Login("reader123", "wrongpassword")

	// Same failure as an unknown user so accounts cannot be enumerated
	assert.ErrorIs(t, err, ErrLoginFailed)
}
