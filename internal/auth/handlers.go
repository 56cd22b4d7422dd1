package auth

import (
	"net/http"
	"strings"

	apperrors "advisory-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandlers provides HTTP handlers for authentication
type AuthHandlers struct {
	service *AuthService
}

// NewAuthHandlers creates new authentication handlers
func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

// Login authenticates a user with username and password
// @Summary Login with credentials
// @Description Verifies username and password and returns a signed JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Access token and user profile"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials or inactive account"
// @Router /auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Validate checks whether the presented JWT is valid
// @Summary Validate a JWT token
// @Description Parses the Authorization header and reports token validity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token validity and claims"
// @Failure 401 {object} AuthValidateResponse "Missing or invalid token"
// @Router /auth/validate [get]
func (h *AuthHandlers) Validate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// Me returns the authenticated user's profile
// @Summary Current user profile
// @Description Returns the profile of the user identified by the JWT
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserProfile "Authenticated user"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "User no longer exists"
// @Router /auth/me [get]
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.service.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, h.service.toProfile(user))
}
