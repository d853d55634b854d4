package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/helpers"
	"github.com/ecamli/registra/internal/pkg/validation"
)

// StudentService handles student profile operations, including identifier
// allocation at creation time.
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError("student is nil")
	}
	name := strings.TrimSpace(student.FullName)
	if len(name) < validation.NameMinLength || len(name) > validation.NameMaxLength {
		return apperrors.NewValidationError("student name length is out of range")
	}
	if !student.Gender.Valid() {
		return apperrors.NewValidationError("gender must be male, female or other")
	}
	if student.Email != "" && !validation.IsValidEmail(strings.ToLower(student.Email)) {
		return apperrors.NewValidationError("invalid email address")
	}
	if student.DateOfBirth.IsZero() {
		return apperrors.NewValidationError("date of birth is required")
	}
	if !student.DateOfBirth.Before(student.EnrollmentDate) {
		return apperrors.NewValidationError("date of birth must precede enrollment date")
	}
	return nil
}

// CreateStudent registers a new student. The identifier (STU<year><seq>) is
// allocated by the store atomically with the insert: the enrollment year's
// highest existing sequence plus one, serialized so concurrent registrations
// never collide. The allocated identifier is set on the returned student.
func (s *StudentService) CreateStudent(ctx context.Context, caps models.Capabilities, student *models.Student) error {
	if !caps.ManageRecords {
		return apperrors.ErrPermissionDenied
	}

	if student != nil && student.EnrollmentDate.IsZero() {
		student.EnrollmentDate = helpers.DateOnly(time.Now())
	}
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.students.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}
	return s.students.GetByID(ctx, id)
}

// GetStudentByIdentifier retrieves a student by the generated identifier
func (s *StudentService) GetStudentByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	if !validation.IsValidIdentifier(identifier) {
		return nil, apperrors.NewValidationError("malformed student identifier")
	}
	return s.students.GetByIdentifier(ctx, identifier)
}

// ListStudents retrieves all students
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.List(ctx)
}

// DeleteStudent removes a student and all dependent enrollments, grades and
// attendance via the store's explicit cascade.
func (s *StudentService) DeleteStudent(ctx context.Context, caps models.Capabilities, id int64) error {
	if !caps.ManageRecords {
		return apperrors.ErrPermissionDenied
	}
	if id <= 0 {
		return apperrors.NewValidationError("student ID must be positive")
	}
	return s.students.Delete(ctx, id)
}
