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

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	Venue             string   `json:"venue" binding:"required"`
	EventName         string   `json:"eventName" binding:"required"`
	Description       string   `json:"description" binding:"required"`
	Date              string   `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime         string   `json:"startTime" binding:"required"`
	EndTime           string   `json:"endTime" binding:"required"`
	Department        string   `json:"department" binding:"required"`
	ContactNumber     string   `json:"contactNumber" binding:"required"`
	ExpectedAttendees int      `json:"expectedAttendees" binding:"required"`
	EquipmentNeeded   []string `json:"equipmentNeeded"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// respondBookingError maps domain errors onto HTTP statuses. Slot conflicts
// and double reviews answer 409 rather than the generic 400.
func respondBookingError(c *gin.Context, err error) {
	var conflict *models.SlotConflictError
	switch {
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, conflict.Error())
	case errors.Is(err, models.ErrAlreadyReviewed):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden), errors.Is(err, models.ErrCannotCancelApproved):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrMissingReason):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("booking request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	booking, err := bc.Bookings.Create(&services.BookingInput{
		Venue:             req.Venue,
		EventName:         req.EventName,
		Description:       req.Description,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Department:        req.Department,
		ContactNumber:     req.ContactNumber,
		ExpectedAttendees: req.ExpectedAttendees,
		EquipmentNeeded:   req.EquipmentNeeded,
	}, middleware.CurrentUser(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated,
		"Booking created successfully. Awaiting admin approval.",
		gin.H{"booking": booking})
}

// GET /api/bookings
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Bookings.List(middleware.CurrentUser(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(bookings), "bookings": bookings})
}

// GET /api/bookings/pending
func (bc *BookingController) ListPending(c *gin.Context) {
	bookings, err := bc.Bookings.ListPending(middleware.CurrentUser(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(bookings), "bookings": bookings})
}

// GET /api/bookings/:id
func (bc *BookingController) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.Get(id, middleware.CurrentUser(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"booking": booking})
}

// PUT /api/bookings/:id/approve
func (bc *BookingController) Approve(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.Approve(id, middleware.CurrentUser(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking approved successfully", gin.H{"booking": booking})
}

// PUT /api/bookings/:id/reject
func (bc *BookingController) Reject(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	booking, err := bc.Bookings.Reject(id, middleware.CurrentUser(c), req.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking rejected", gin.H{"booking": booking})
}

// DELETE /api/bookings/:id
func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := bc.Bookings.Delete(id, middleware.CurrentUser(c)); err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Booking deleted successfully", nil)
}

// GET /api/bookings/availability/:venue?date=YYYY-MM-DD
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	venue := c.Param("venue")
	rawDate := c.Query("date")
	if rawDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a date")
		return
	}
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	slots, err := bc.Bookings.CheckAvailability(venue, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"bookings": slots})
}
