package handler

import (
	"errors"
	"log"
	"net/http"

	"jobconnect/internal/middleware"
	"jobconnect/internal/model"
	"jobconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job posting requests
type JobHandler struct {
	service service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService) *JobHandler {
	return &JobHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// ListJobs is the public job listing, no authentication required
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve jobs"})
		return
	}
	if jobs == nil {
		jobs = []model.JobListing{}
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob creates a posting owned by the session user. The owner always
// comes from the session, never from client input.
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// MyJobPostings lists only the session user's own postings
func (h *JobHandler) MyJobPostings(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	jobs, err := h.service.ListJobsByPoster(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing job postings: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve job postings"})
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// RegisterJobRoutes registers the public listing and the employer routes
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/jobs", h.ListJobs)

	employerRoutes := rg.Group("/employer")
	employerRoutes.Use(authMW)
	{
		employerRoutes.POST("/create-job", h.CreateJob)
		employerRoutes.GET("/job-postings", h.MyJobPostings)
	}
}
