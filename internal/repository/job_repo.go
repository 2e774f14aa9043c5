package repository

import (
	"context"
	"fmt"

	"jobconnect/internal/model"
)

// JobRepository defines operations for job postings
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindAll(ctx context.Context) ([]model.JobListing, error)
	FindByPoster(ctx context.Context, userID int) ([]model.Job, error)
}

type jobRepository struct {
	db DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db DB) JobRepository {
	return &jobRepository{db: db}
}

// Create inserts a new job posting into the database
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	sql := `INSERT INTO jobs (title, description, company, posted_by, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, job.Title, job.Description, job.Company, job.PostedBy, job.CreatedAt).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindAll retrieves every job posting with the poster's display name resolved.
// No explicit ordering; callers get store-default order.
func (r *jobRepository) FindAll(ctx context.Context) ([]model.JobListing, error) {
	sql := `SELECT j.id, j.title, j.description, j.company, j.posted_by, j.created_at, u.name
            FROM jobs j JOIN users u ON j.posted_by = u.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.JobListing
	for rows.Next() {
		var j model.JobListing
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Company, &j.PostedBy, &j.CreatedAt, &j.PostedByName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// FindByPoster retrieves the job postings owned by a specific user
func (r *jobRepository) FindByPoster(ctx context.Context, userID int) ([]model.Job, error) {
	sql := `SELECT id, title, description, company, posted_by, created_at
            FROM jobs WHERE posted_by = $1`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by poster: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.PostedBy, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}
