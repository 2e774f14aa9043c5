package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobconnect/internal/model"
	"jobconnect/internal/repository"
	"jobconnect/internal/utils"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService provides registration, login and logout
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, *model.Session, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.User, *model.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	tokenUtil   *utils.TokenUtil
	sessionTTL  time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, tokenUtil *utils.TokenUtil, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokenUtil:   tokenUtil,
		sessionTTL:  sessionTTL,
	}
}

// Register creates a new account and establishes a session for it. Email
// uniqueness is enforced by the store; a duplicate surfaces as ErrEmailTaken.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, *model.Session, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		UserType:     req.UserType,
		CreatedAt:    time.Now(),
	}
	// Company name only applies to employers; a jobseeker sending one gets it dropped.
	if req.UserType == model.UserTypeEmployer {
		user.CompanyName = req.CompanyName
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	session, err := s.establishSession(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("user created, but failed to establish session: %w", err)
	}
	return user, session, nil
}

// Login authenticates a user by (email, claimed role) and establishes a session
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.User, *model.Session, error) {
	user, err := s.userRepo.FindByEmailAndType(ctx, req.Email, req.UserType)
	if err != nil {
		return nil, nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, ErrInvalidPassword
	}

	session, err := s.establishSession(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to establish session: %w", err)
	}
	return user, session, nil
}

// Logout destroys the session for the given token. A missing or empty token is
// not an error; logout only fails if the store itself does.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *authService) establishSession(ctx context.Context, userID int) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		Token:     s.tokenUtil.NewSessionToken(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
