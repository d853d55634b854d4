package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/validation"
)

// EnrollmentService enforces the uniqueness and referential rules binding a
// student to a course for one term.
type EnrollmentService struct {
	enrollments EnrollmentStore
	students    StudentStore
	courses     CourseStore
	notifier    Notifier
}

// NewEnrollmentService creates a new enrollment service instance. notifier
// may be nil; enrollment then emits no dashboard messages.
func NewEnrollmentService(enrollments EnrollmentStore, students StudentStore, courses CourseStore, notifier Notifier) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		notifier:    notifier,
	}
}

// Enroll registers a student in a course for a semester and academic year.
// The (student, course, semester, academic_year) tuple must be unique;
// a duplicate fails with DuplicateEnrollment carrying the offending key.
// Enrollment is otherwise unconditional: no waitlists, prerequisites or
// capacity limits.
func (s *EnrollmentService) Enroll(ctx context.Context, caps models.Capabilities, studentID, courseID int64, semester, academicYear string) (*models.Enrollment, error) {
	if !caps.ManageRecords {
		return nil, apperrors.ErrPermissionDenied
	}
	if strings.TrimSpace(semester) == "" {
		return nil, apperrors.NewValidationError("semester cannot be empty")
	}
	if !validation.IsValidAcademicYear(academicYear) {
		return nil, apperrors.NewValidationError("academic year must look like 2023-2024")
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID:    studentID,
		CourseID:     courseID,
		Semester:     semester,
		AcademicYear: academicYear,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEnrollment) {
			return nil, apperrors.ErrDuplicateEnrollment.WithDetails(map[string]interface{}{
				"studentId":    studentID,
				"courseId":     courseID,
				"semester":     semester,
				"academicYear": academicYear,
			})
		}
		return nil, err
	}
	enrollment.Course = course

	if s.notifier != nil && student.UserID != nil {
		s.notifier.NotifyUser(ctx, *student.UserID,
			fmt.Sprintf("You have been enrolled in %s (%s) for %s %s", course.Name, course.Code, semester, academicYear))
	}

	return enrollment, nil
}

// GetEnrollment retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("enrollment ID must be positive")
	}
	return s.enrollments.GetByID(ctx, id)
}

// ListEnrollments retrieves a student's enrollments for one term
func (s *EnrollmentService) ListEnrollments(ctx context.Context, studentID int64, semester, academicYear string) ([]*models.Enrollment, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}
	return s.enrollments.ListByStudentTerm(ctx, studentID, semester, academicYear)
}

// Withdraw removes a single enrollment together with its grade
func (s *EnrollmentService) Withdraw(ctx context.Context, caps models.Capabilities, enrollmentID int64) error {
	if !caps.ManageRecords {
		return apperrors.ErrPermissionDenied
	}
	if enrollmentID <= 0 {
		return apperrors.NewValidationError("enrollment ID must be positive")
	}
	return s.enrollments.Delete(ctx, enrollmentID)
}
