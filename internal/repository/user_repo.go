package repository

import (
	"context"
	"errors"
	"fmt"

	"jobconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmailAndType(ctx context.Context, email, userType string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	UpdateResumePath(ctx context.Context, id int, resumePath string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (name, email, password_hash, user_type, company_name, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Name, user.Email, user.PasswordHash, user.UserType, user.CompanyName, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmailAndType retrieves a user by email and role. The role is part of
// the lookup key on purpose: login claims a role and only matches within it.
func (r *userRepository) FindByEmailAndType(ctx context.Context, email, userType string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, name, email, password_hash, user_type, company_name, resume_path, created_at
            FROM users WHERE email = $1 AND user_type = $2`
	err := r.db.QueryRow(ctx, sql, email, userType).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.UserType,
		&user.CompanyName, &user.ResumePath, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email and type: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, name, email, password_hash, user_type, company_name, resume_path, created_at
            FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.UserType,
		&user.CompanyName, &user.ResumePath, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// UpdateResumePath updates the résumé reference for a user
func (r *userRepository) UpdateResumePath(ctx context.Context, id int, resumePath string) error {
	sql := `UPDATE users SET resume_path = $1 WHERE id = $2 RETURNING id`
	var updatedID int
	err := r.db.QueryRow(ctx, sql, resumePath, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update resume path: %w", err)
	}
	return nil
}
