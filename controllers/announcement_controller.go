package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"college-backend/middleware"
	"college-backend/models"
	"college-backend/services"
	"college-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CreateAnnouncementRequest struct {
	Title      string                  `json:"title" binding:"required"`
	Content    string                  `json:"content" binding:"required"`
	Type       models.AnnouncementType `json:"type"`
	ExpiryDate *time.Time              `json:"expiryDate"`
}

type UpdateAnnouncementRequest struct {
	Title      *string                  `json:"title"`
	Content    *string                  `json:"content"`
	Type       *models.AnnouncementType `json:"type"`
	IsActive   *bool                    `json:"isActive"`
	ExpiryDate *time.Time               `json:"expiryDate"`
}

type AnnouncementController struct {
	Announcements *services.AnnouncementService
}

func NewAnnouncementController(svc *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Announcements: svc}
}

func respondAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrAnnouncementNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("announcement request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func announcementID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid announcement id")
		return 0, false
	}
	return uint(id), true
}

// GET /api/announcements
func (ac *AnnouncementController) List(c *gin.Context) {
	announcements, err := ac.Announcements.Active()
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(announcements), "announcements": announcements})
}

// GET /api/announcements/:id
func (ac *AnnouncementController) Get(c *gin.Context) {
	id, ok := announcementID(c)
	if !ok {
		return
	}
	announcement, err := ac.Announcements.GetByID(id)
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", announcement)
}

// POST /api/announcements
func (ac *AnnouncementController) Create(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	announcement, err := ac.Announcements.Create(&services.AnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		Type:       req.Type,
		ExpiryDate: req.ExpiryDate,
	}, middleware.CurrentUser(c))
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Announcement created successfully", announcement)
}

// PUT /api/announcements/:id
func (ac *AnnouncementController) Update(c *gin.Context) {
	id, ok := announcementID(c)
	if !ok {
		return
	}
	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	patch := map[string]any{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	if req.Type != nil {
		patch["type"] = *req.Type
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}
	if req.ExpiryDate != nil {
		patch["expiry_date"] = *req.ExpiryDate
	}

	announcement, err := ac.Announcements.Update(id, patch)
	if err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Announcement updated successfully", announcement)
}

// DELETE /api/announcements/:id
func (ac *AnnouncementController) Delete(c *gin.Context) {
	id, ok := announcementID(c)
	if !ok {
		return
	}
	if err := ac.Announcements.Delete(id); err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Announcement deleted successfully", nil)
}

// POST /api/announcements/:id/click
func (ac *AnnouncementController) Click(c *gin.Context) {
	id, ok := announcementID(c)
	if !ok {
		return
	}
	if err := ac.Announcements.Click(id); err != nil {
		respondAnnouncementError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", nil)
}
