package handler

import (
	"errors"
	"log"
	"net/http"

	"jobconnect/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile retrieval and résumé upload
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Profile returns the session user's record. The password hash is excluded
// by the model's JSON tags.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error getting profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadResume accepts a single multipart file under the "resume" field and
// records its public path on the session user
func (h *UserHandler) UploadResume(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	resumeURL, err := h.service.UploadResume(c.Request.Context(), userID, file)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Error uploading resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Resume uploaded successfully",
		"resumeUrl": resumeURL,
	})
}

// RegisterUserRoutes registers the jobseeker upload route and the profile route
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobseekerRoutes := rg.Group("/jobseeker")
	jobseekerRoutes.Use(authMW)
	{
		jobseekerRoutes.POST("/upload-resume", h.UploadResume)
	}

	userRoutes := rg.Group("/user")
	userRoutes.Use(authMW)
	{
		userRoutes.GET("/profile", h.Profile)
	}
}
