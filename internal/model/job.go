package model

import "time"

// Job represents an open position posted by an employer. Company is
// denormalized from the posting employer at creation time.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	PostedBy    int       `json:"postedBy"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateJobRequest is used for creating a new job posting. The owner is taken
// from the session, never from the request body.
type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// JobListing is a Job with the poster's display name resolved, as returned by
// the public listing.
type JobListing struct {
	Job
	PostedByName string `json:"postedByName"`
}
