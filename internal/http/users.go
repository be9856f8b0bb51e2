package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// AuthService defines the identity operations used by the controller.
type AuthService interface {
	Register(username, password string) (*entities.User, error)
	Login(username, password string) (string, error)
}

type AuthController struct {
	service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=10"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account.
// POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if !bindStrict(c, &req) {
		return
	}

	user, err := ac.service.Register(req.Username, req.Password)
	if err != nil {
		// bcrypt enforces a byte-level ceiling the rune-based schema check
		// cannot express, so its sentinels still count as validation failures
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			respondValidationError(c, map[string][]string{"password": {err.Error()}})
			return
		}
		// Duplicate usernames surface as a generic persistence error
		respondInternalError(c, err, "register user")
		return
	}

	respondCreated(c, user)
}

// Login verifies credentials and returns a bearer token.
// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if !bindStrict(c, &req) {
		return
	}

	token, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrLoginFailed) {
			// One message for unknown user and wrong password
			respondBadRequest(c, "login failed")
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
