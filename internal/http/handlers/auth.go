package handlers

import (
	"errors"
	"net/http"
	"strings"

	"taskvault/internal/domain"
	"taskvault/internal/logger"
	"taskvault/internal/repository"
	"taskvault/internal/service"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

// Register creates a new user from email and password.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid or missing form input",
		})
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		logger.Error("hash password failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	user := &domain.User{
		Email:          strings.TrimSpace(strings.ToLower(req.Email)),
		HashedPassword: hash,
	}

	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "Conflict",
				"message": "User already exists",
			})
			return
		}
		logger.Error("create user failed", "email", user.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	logger.Info("user registered", "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"status":  "Created",
		"message": "The user was successfully created",
	})
}

// Login verifies credentials and sets the session cookie. Unknown email
// and wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Bad Request",
			"message": "Invalid or missing form input",
		})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	ctx := c.Request.Context()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		logger.Error("lookup user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	if user == nil || !service.CheckPassword(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "Unauthorized",
			"message": "Invalid credentials",
		})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		logger.Error("sign token failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "Internal Server Error",
			"message": "An unexpected error occurred",
		})
		return
	}

	h.setSessionCookie(c, token)

	logger.Info("user logged in", "email", email)
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Login successful",
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry, there is no server-side revocation.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(service.TokenCookieName, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Logged out",
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(service.TokenCookieName, token, int(h.TokenTTL.Seconds()), "/", "", h.CookieSecure, true)
}
