package controllers

import (
	"errors"
	"net/http"

	"college-backend/middleware"
	"college-backend/models"
	"college-backend/services"
	"college-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role"`
	Branch   string      `json:"branch"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Auth: svc}
}

func userView(u *models.User) gin.H {
	view := gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
	if u.Branch != "" {
		view["branch"] = u.Branch
	}
	return view
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Registration for this role is restricted")
	case errors.Is(err, models.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("auth request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, token, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  userView(user),
		"token": token,
	})
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide name, email, and password")
		return
	}

	// Registration is public, but an authenticated admin may also call it
	// to create further admin accounts.
	actor := middleware.CurrentUser(c)

	user, err := ac.Auth.Register(&services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Branch:   req.Branch,
	}, actor)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "User registered successfully", gin.H{"user": userView(user)})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"user": userView(user)})
}
