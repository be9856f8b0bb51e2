package auth

import (
	"errors"

	"github.com/bookworm-app/bookworm/internal/config"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// ErrLoginFailed is returned for every credential failure. Unknown usernames
// and wrong passwords are deliberately indistinguishable so the endpoint
// cannot be used to enumerate accounts.
var ErrLoginFailed = errors.New("login failed")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	CreateUser(username, passwordHash string) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
}

// Service handles registration and credential verification.
type Service struct {
	users  UserRepository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserRepository, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		config: cfg,
	}
}

// Register hashes the password and creates the user. Shape validation
// (lengths, unknown fields) happens at the HTTP layer before this is called;
// a duplicate username surfaces as the repository's constraint error.
func (s *Service) Register(username, password string) (*entities.User, error) {
	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(username, hash)
}

// Login verifies the credentials and issues a signed token on success.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		return "", ErrLoginFailed
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return "", ErrLoginFailed
	}

	return SignToken([]byte(s.config.JWTSecret), user.ID, s.config.TokenExpiry)
}
