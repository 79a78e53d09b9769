package service

import (
	"context"
	"errors"
	"fmt"

	"customer-portal/internal/domain"
	"customer-portal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
)

// RegisterInput carries an already validated registration request.
// Password is optional.
type RegisterInput struct {
	Email        string
	FirstName    string
	LastName     string
	CustomerCode string
	Password     string
}

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Profile(ctx context.Context, email string) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a customer account. A duplicate email is a conflict
// whether it is seen by the pre-check or by the unique index.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domain.NewStoreError("Failed to register user", fmt.Errorf("failed to check existing user: %w", err))
	}
	if existing != nil {
		return nil, domain.NewConflictError("User with this email already exists")
	}

	user := &domain.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CustomerCode: input.CustomerCode,
		Role:         domain.RoleCustomer,
	}

	if input.Password != "" {
		hashed, err := s.hashPassword(input.Password)
		if err != nil {
			return nil, domain.NewStoreError("Failed to register user", fmt.Errorf("failed to hash password: %w", err))
		}
		user.PasswordHash = &hashed
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domain.NewConflictError("User with this email already exists")
		}
		return nil, domain.NewStoreError("Failed to register user", err)
	}

	return user, nil
}

// Profile returns the user for email and records the visit as a login.
func (s *userService) Profile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("User profile not found")
		}
		return nil, domain.NewStoreError("Failed to fetch user profile", err)
	}

	lastLogin, err := s.userRepo.TouchLastLogin(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("User profile not found")
		}
		return nil, domain.NewStoreError("Failed to fetch user profile", err)
	}
	user.LastLoginAt = &lastLogin

	return user, nil
}

// hashPassword hashes a password using bcrypt with cost factor 10
func (s *userService) hashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}
