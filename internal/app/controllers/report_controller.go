package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecamli/registra/internal/app/models/dto"
	"github.com/ecamli/registra/internal/app/services"
	"github.com/ecamli/registra/internal/middleware"
)

// ReportController serves the read-only report assembler
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetReportCard assembles a student's report card for one term
// @Summary Get a report card
// @Description Assembles a student's graded enrollments for one term with a credit-weighted GPA. A student with no graded enrollments, or no records at all, yields an empty report card.
// @Tags reports
// @Accept json
// @Produce json
// @Param studentId path int true "Student ID"
// @Param semester query string true "Semester" example(Fall)
// @Param academicYear query string true "Academic year" example(2024-2025)
// @Success 200 {object} dto.APIResponse{data=models.ReportCard} "Report card assembled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/students/{studentId}/report-card [get]
func (c *ReportController) GetReportCard(ctx *gin.Context) {
	studentIDStr := ctx.Param("studentId")
	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	card, err := c.reportService.BuildReportCard(ctx, studentID,
		ctx.Query("semester"), ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      card,
		Timestamp: time.Now(),
	})
}

// GetAttendanceSummary aggregates attendance for a student in a course
// @Summary Get an attendance summary
// @Description Aggregates a student's attendance in one course over a date range into totals and a presence percentage
// @Tags reports
// @Accept json
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId query int true "Course ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceSummary} "Attendance summary assembled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/students/{studentId}/attendance-summary [get]
func (c *ReportController) GetAttendanceSummary(ctx *gin.Context) {
	studentIDStr := ctx.Param("studentId")
	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("courseId must be a valid number")
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

	summary, err := c.reportService.BuildAttendanceSummary(ctx, studentID, courseID, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}
