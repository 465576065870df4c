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

type MarkAttendanceRequest struct {
	Date           string                     `json:"date" binding:"required"` // YYYY-MM-DD
	Period         int                        `json:"period" binding:"required"`
	Branch         string                     `json:"branch" binding:"required"`
	AttendanceData []services.AttendanceEntry `json:"attendanceData" binding:"required"`
}

type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AttendanceController struct {
	Attendance *services.AttendanceService
}

func NewAttendanceController(svc *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Attendance: svc}
}

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrAttendanceNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrEditWindowClosed):
		utils.JSONError(c, http.StatusForbidden, "Edit window has passed. Only admins can edit now.")
	case errors.Is(err, models.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("attendance request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/attendance/mark
func (ac *AttendanceController) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attendance data")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	records, err := ac.Attendance.Mark(date, req.Period, req.Branch, req.AttendanceData, middleware.CurrentUser(c))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Attendance marked successfully", records)
}

// PUT /api/attendance/update/:id
func (ac *AttendanceController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attendance id")
		return
	}
	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := ac.Attendance.Update(uint(id), req.Status, req.Reason, middleware.CurrentUser(c))
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Attendance updated successfully", record)
}

// GET /api/attendance/my
func (ac *AttendanceController) My(c *gin.Context) {
	user := middleware.CurrentUser(c)
	records, stats, err := ac.Attendance.ForStudent(user.ID)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"stats":   stats,
	})
}

// GET /api/attendance/branch/:branch?date=YYYY-MM-DD&period=N
func (ac *AttendanceController) ByBranch(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}
	var period *int
	if raw := c.Query("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid period")
			return
		}
		period = &parsed
	}

	records, err := ac.Attendance.ForBranch(c.Param("branch"), date, period)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(records), "records": records})
}
