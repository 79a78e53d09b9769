package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-portal/internal/database"
	"customer-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

const userColumns = `id, email, first_name, last_name, customer_code, role, password_hash, created_at, last_login_at`

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) (time.Time, error)
}

type userRepository struct {
	db database.Querier
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db database.Querier) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and fills in the generated ID and creation time.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, customer_code, role, password_hash)
		VALUES (@email, @first_name, @last_name, @customer_code, @role, @password_hash)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"customer_code": user.CustomerCode,
		"role":          string(user.Role),
		"password_hash": user.PasswordHash,
	}).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return user, nil
}

// TouchLastLogin stamps the user's last login with the current time and
// returns the stored value.
func (r *userRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) (time.Time, error) {
	query := `
		UPDATE users
		SET last_login_at = GREATEST(NOW(), COALESCE(last_login_at, NOW()))
		WHERE id = @id
		RETURNING last_login_at
	`

	var lastLogin time.Time
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&lastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrUserNotFound
		}
		return time.Time{}, fmt.Errorf("failed to update last login: %w", err)
	}

	return lastLogin, nil
}
