package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"college-backend/middleware"
	"college-backend/models"
	"college-backend/services"
	"college-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AddMarkRequest struct {
	StudentID     uint    `json:"studentId" binding:"required"`
	Subject       string  `json:"subject" binding:"required"`
	Semester      string  `json:"semester" binding:"required"`
	ExamType      string  `json:"examType"`
	MarksObtained float64 `json:"marksObtained"`
	TotalMarks    float64 `json:"totalMarks"`
}

type MarkController struct {
	Marks *services.MarkService
}

func NewMarkController(svc *services.MarkService) *MarkController {
	return &MarkController{Marks: svc}
}

func respondMarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrStudentNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("mark request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/marks
func (mc *MarkController) AddMark(c *gin.Context) {
	var req AddMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	totalMarks := req.TotalMarks
	if totalMarks == 0 {
		totalMarks = 100
	}

	mark, err := mc.Marks.AddMark(&services.MarkInput{
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		Semester:      req.Semester,
		ExamType:      req.ExamType,
		MarksObtained: req.MarksObtained,
		TotalMarks:    totalMarks,
	}, middleware.CurrentUser(c))
	if err != nil {
		respondMarkError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Marks saved successfully", mark)
}

// GET /api/marks/student/:studentId
func (mc *MarkController) StudentMarks(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("studentId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid student id")
		return
	}
	marks, err := mc.Marks.StudentMarks(uint(id))
	if err != nil {
		respondMarkError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(marks), "marks": marks})
}

// GET /api/marks/my-marks
func (mc *MarkController) MyMarks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	marks, err := mc.Marks.StudentMarks(user.ID)
	if err != nil {
		respondMarkError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(marks), "marks": marks})
}

// GET /api/marks/branch/:branch
func (mc *MarkController) StudentsByBranch(c *gin.Context) {
	students, err := mc.Marks.StudentsByBranch(c.Param("branch"))
	if err != nil {
		respondMarkError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"count": len(students), "students": students})
}
