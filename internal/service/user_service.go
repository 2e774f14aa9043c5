package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"jobconnect/internal/model"
	"jobconnect/internal/repository"
)

// UserService defines operations on the authenticated user's own record
type UserService interface {
	GetProfile(ctx context.Context, userID int) (*model.User, error)
	UploadResume(ctx context.Context, userID int, fileHeader *multipart.FileHeader) (string, error)
}

type userService struct {
	userRepo   repository.UserRepository
	uploadsDir string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, uploadsDir string) UserService {
	return &userService{userRepo: userRepo, uploadsDir: uploadsDir}
}

// GetProfile returns the user's record. The password hash never serializes
// (json:"-" on the model).
func (s *userService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UploadResume stores the file on disk under a server-controlled name
// (upload timestamp plus the original extension, collisions accepted) and
// records the public path on the user. Two concurrent uploads for the same
// user race last-write-wins.
func (s *userService) UploadResume(ctx context.Context, userID int, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to find user for resume upload: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := os.MkdirAll(s.uploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	fileName := strconv.FormatInt(time.Now().UnixNano(), 10) + filepath.Ext(fileHeader.Filename)
	filePath := filepath.Join(s.uploadsDir, fileName)

	// Save the file
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	resumeURL := "/uploads/" + fileName
	if err := s.userRepo.UpdateResumePath(ctx, userID, resumeURL); err != nil {
		os.Remove(filePath) // Attempt to clean up
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to update user with resume path: %w", err)
	}

	return resumeURL, nil
}
