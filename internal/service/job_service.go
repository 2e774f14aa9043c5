package service

import (
	"context"
	"fmt"
	"time"

	"jobconnect/internal/model"
	"jobconnect/internal/repository"
)

// JobService defines operations for job postings
type JobService interface {
	CreateJob(ctx context.Context, userID int, req model.CreateJobRequest) (*model.Job, error)
	ListJobs(ctx context.Context) ([]model.JobListing, error)
	ListJobsByPoster(ctx context.Context, userID int) ([]model.Job, error)
}

type jobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository) JobService {
	return &jobService{jobRepo: jobRepo, userRepo: userRepo}
}

// CreateJob creates a job posting owned by the session user. The company name
// is denormalized from the posting employer's account at creation time.
func (s *jobService) CreateJob(ctx context.Context, userID int, req model.CreateJobRequest) (*model.Job, error) {
	poster, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up poster: %w", err)
	}
	if poster == nil {
		return nil, ErrUserNotFound
	}

	company := poster.Name
	if poster.CompanyName != nil && *poster.CompanyName != "" {
		company = *poster.CompanyName
	}

	job := &model.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     company,
		PostedBy:    userID,
		CreatedAt:   time.Now(),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job in repo: %w", err)
	}
	return job, nil
}

// ListJobs returns every posting with the poster's display name resolved
func (s *jobService) ListJobs(ctx context.Context) ([]model.JobListing, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs from repo: %w", err)
	}
	return jobs, nil
}

// ListJobsByPoster returns only the postings owned by the given user
func (s *jobService) ListJobsByPoster(ctx context.Context, userID int) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindByPoster(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by poster from repo: %w", err)
	}
	return jobs, nil
}
