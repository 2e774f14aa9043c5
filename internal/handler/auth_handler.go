package handler

import (
	"errors"
	"log"
	"net/http"

	"jobconnect/internal/middleware"
	"jobconnect/internal/model"
	"jobconnect/internal/service"
	"jobconnect/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	service      service.AuthService
	tokenUtil    *utils.TokenUtil
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler. cookieMaxAge is the session cookie
// lifetime in seconds and should match the server-side session TTL.
func NewAuthHandler(s service.AuthService, tokenUtil *utils.TokenUtil, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{service: s, tokenUtil: tokenUtil, cookieMaxAge: cookieMaxAge}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	_, session, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error during registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, gin.H{"message": "Registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	_, session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
			return
		}
		log.Printf("Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	h.setSessionCookie(c, session.Token)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully"})
}

// Logout destroys the current session. It succeeds even when no session
// exists; only a failing session destroy yields an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	var token string
	if cookieValue, err := c.Cookie(middleware.SessionCookieName); err == nil {
		// A forged or malformed cookie means there is no session to destroy.
		token, _ = h.tokenUtil.Verify(cookieValue)
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		log.Printf("Error during logout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not log out"})
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, h.tokenUtil.Sign(token), h.cookieMaxAge, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}
