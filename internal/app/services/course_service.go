package services

import (
	"context"
	"strings"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/validation"
)

// CourseService handles course catalog operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is nil")
	}
	if !validation.IsValidCourseCode(course.Code) {
		return apperrors.NewValidationError("course code must be uppercase alphanumeric")
	}
	if strings.TrimSpace(course.Name) == "" {
		return apperrors.NewValidationError("course name cannot be empty")
	}
	if course.CreditHours <= 0 {
		return apperrors.NewValidationError("credit hours must be positive")
	}
	return nil
}

// CreateCourse adds a course to the catalog. Courses are immutable once
// created.
func (s *CourseService) CreateCourse(ctx context.Context, caps models.Capabilities, course *models.Course) error {
	if !caps.ManageRecords {
		return apperrors.ErrPermissionDenied
	}
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courses.Create(ctx, course)
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("course ID must be positive")
	}
	return s.courses.GetByID(ctx, id)
}

// GetCourseByCode retrieves a course by its catalog code
func (s *CourseService) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	if !validation.IsValidCourseCode(code) {
		return nil, apperrors.NewValidationError("malformed course code")
	}
	return s.courses.GetByCode(ctx, code)
}

// ListCourses retrieves the whole catalog
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.List(ctx)
}

// DeleteCourse removes a course and all dependent enrollments, grades and
// attendance via the store's explicit cascade.
func (s *CourseService) DeleteCourse(ctx context.Context, caps models.Capabilities, id int64) error {
	if !caps.ManageRecords {
		return apperrors.ErrPermissionDenied
	}
	if id <= 0 {
		return apperrors.NewValidationError("course ID must be positive")
	}
	return s.courses.Delete(ctx, id)
}
