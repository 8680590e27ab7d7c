package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
	"github.com/lightbnb/api/internal/repository"
)

// UserService exposes user lookups and registration.
type UserService struct {
	repo     repository.UsersRepository
	validate *validator.Validate
	hashCost int
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo, validate: newValidator(), hashCost: bcrypt.DefaultCost}
}

// GetUserByEmail returns the user registered with exactly this email.
// Only surrounding whitespace is removed; case is significant.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ValidationError{Message: "email is required", Fields: map[string]string{"email": "required"}}
	}
	return s.repo.FindByEmail(ctx, email)
}

// GetUserByID returns the user with the given identifier.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// AddUser registers a user. Duplicate emails are rejected by the store.
func (s *UserService) AddUser(ctx context.Context, req dto.AddUserRequest) (*entity.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Name, email, string(hashed))
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, repository.ErrEmailDuplicate
		}
		return nil, err
	}
	return user, nil
}
