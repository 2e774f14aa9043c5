package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the HTML page shells. The pages drive the JSON API from
// the browser; the session cookie rides along on every fetch.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{"Title": "JobConnect"})
}

func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Title": "Login"})
}

func (h *PageHandler) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"Title": "Register"})
}

func (h *PageHandler) JobseekerDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "jobseeker_dashboard.tmpl", gin.H{"Title": "Jobseeker Dashboard"})
}

func (h *PageHandler) EmployerDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "employer_dashboard.tmpl", gin.H{"Title": "Employer Dashboard"})
}

// RegisterPageRoutes registers the page routes on the root router
func (h *PageHandler) RegisterPageRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/login", h.Login)
	router.GET("/register", h.Register)
	router.GET("/jobseeker-dashboard", h.JobseekerDashboard)
	router.GET("/employer-dashboard", h.EmployerDashboard)
}
