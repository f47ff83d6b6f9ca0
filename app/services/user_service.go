package services

import (
	"errors"
	"fmt"

	"gemini-portal/app/models"
	"gemini-portal/app/password"
	"gemini-portal/app/repo"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords
// so responses never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateUsername mirrors the repo sentinel for callers that only
// import the service layer.
var ErrDuplicateUsername = repo.ErrDuplicateUsername

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register hashes the password and inserts the account. The username is
// expected to be sanitized already.
func (s *UserService) Register(username, plain string) (*models.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate looks up the account and verifies the password.
func (s *UserService) Authenticate(username, plain string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(plain, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.ListAll()
}
