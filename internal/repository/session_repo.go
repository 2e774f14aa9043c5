package repository

import (
	"context"
	"errors"
	"fmt"

	"jobconnect/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepository defines operations for server-side session records
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}

type sessionRepository struct {
	db DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a new session into the database
func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	sql := `INSERT INTO sessions (token, user_id, created_at, expires_at)
            VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, sql, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByToken retrieves a session by its token
func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	session := &model.Session{}
	sql := `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = $1`
	err := r.db.QueryRow(ctx, sql, token).Scan(&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Session not found, caller treats as unauthenticated
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}
	return session, nil
}

// Delete removes a session. Deleting a token that no longer exists is not an
// error: logout must succeed even without a live session.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	sql := `DELETE FROM sessions WHERE token = $1`
	if _, err := r.db.Exec(ctx, sql, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
