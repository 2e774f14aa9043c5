package model

import "time"

const (
	UserTypeJobseeker = "jobseeker"
	UserTypeEmployer  = "employer"
)

// User represents an account in the system. CompanyName is only ever set for
// employers, ResumePath only for jobseekers; both are nullable in the store.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	UserType     string    `json:"userType"`
	CompanyName  *string   `json:"companyName,omitempty"` // Pointer for optional field
	ResumePath   *string   `json:"resume,omitempty"`      // Pointer for optional field
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest is used for creating a new account
type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	UserType    string  `json:"userType" binding:"required,oneof=jobseeker employer"`
	CompanyName *string `json:"companyName"`
}

// LoginRequest carries the credentials plus the claimed role. The role is part
// of the lookup key: an email registered as jobseeker cannot log in claiming
// employer.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required,oneof=jobseeker employer"`
}
