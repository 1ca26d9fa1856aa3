package services

import (
	"context"
	"strings"

	"fundtracker/src/models"
	"fundtracker/src/repositories"
	"fundtracker/src/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthServiceI interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return utils.NewValidationError("username and password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.Create(ctx, &models.User{
		Username: username,
		Password: string(hash),
	})
}

// Authenticate verifies the credentials and returns the user. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewValidationError("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.NewValidationError("invalid username or password")
	}
	return user, nil
}
