package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecamli/registra/internal/app/models/dto"
	"github.com/ecamli/registra/internal/app/services"
	"github.com/ecamli/registra/internal/middleware"
	"github.com/ecamli/registra/internal/pkg/apperrors"
)

// AttendanceController handles the daily attendance register
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance applies an attendance sheet for one course and day
// @Summary Mark attendance for a course
// @Description Applies one attendance sheet. Each entry is upserted on (student, course, date): re-submitting the same day overwrites earlier statuses. Processing stops at the first unknown student; entries already applied stay applied.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance sheet"
// @Success 200 {object} dto.APIResponse{data=models.MarkResult} "Attendance marked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance sheet")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.attendanceService.MarkAttendance(ctx, middleware.GetCapabilities(ctx),
		req.CourseID, req.Date, req.Entries)
	if err != nil {
		// Entries applied before the failure stay applied; report them so
		// the caller can resubmit only the remainder
		if result != nil && len(result.Applied) > 0 && errors.Is(err, apperrors.ErrNotFound) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
			errorDetail = errorDetail.WithDetails(result)
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetAttendance retrieves a student's attendance in a course over a date range
// @Summary Get attendance records
// @Description Retrieves a student's attendance in one course over a date range, ordered by date
// @Tags attendance
// @Accept json
// @Produce json
// @Param studentId query int true "Student ID"
// @Param courseId query int true "Course ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	studentID, err1 := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
	courseID, err2 := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err1 != nil || err2 != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student or course ID")
		errorDetail = errorDetail.WithDetails("studentId and courseId must be valid numbers")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	from, err1 := time.Parse("2006-01-02", ctx.Query("from"))
	to, err2 := time.Parse("2006-01-02", ctx.Query("to"))
	if err1 != nil || err2 != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date range")
		errorDetail = errorDetail.WithDetails("from and to must be dates in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetAttendance(ctx, studentID, courseID, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}
