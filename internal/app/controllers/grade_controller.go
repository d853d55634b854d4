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

// GradeController handles the grade ledger
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// RecordGrade records or replaces a grade for an enrollment
// @Summary Record a grade
// @Description Records numeric marks for an enrollment and derives the letter grade. Re-recording replaces the existing grade.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordGradeRequest true "Grade information"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Marks out of range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [put]
func (c *GradeController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.RecordGrade(ctx, middleware.GetCapabilities(ctx),
		req.EnrollmentID, req.Marks, req.Remark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// GetGrade retrieves the grade recorded for an enrollment
// @Summary Get grade by enrollment
// @Description Retrieves the grade recorded for a specific enrollment
// @Tags grades
// @Accept json
// @Produce json
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "No grade recorded for this enrollment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{enrollmentId} [get]
func (c *GradeController) GetGrade(ctx *gin.Context) {
	enrollmentIDStr := ctx.Param("enrollmentId")
	enrollmentID, err := strconv.ParseInt(enrollmentIDStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment ID")
		errorDetail = errorDetail.WithDetails("Enrollment ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, err := c.gradeService.GetGrade(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}
