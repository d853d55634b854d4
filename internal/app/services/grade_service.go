package services

import (
	"context"
	"fmt"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/logger"
)

// GradeService stores one grade per enrollment and derives the letter grade
// from the numeric score.
type GradeService struct {
	grades      GradeStore
	enrollments EnrollmentStore
	students    StudentStore
	courses     CourseStore
	notifier    Notifier
}

// NewGradeService creates a new grade service instance. notifier may be nil.
func NewGradeService(grades GradeStore, enrollments EnrollmentStore, students StudentStore, courses CourseStore, notifier Notifier) *GradeService {
	return &GradeService{
		grades:      grades,
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		notifier:    notifier,
	}
}

// RecordGrade records or replaces the grade for an enrollment. Marks outside
// [0,100] fail with InvalidScore; the letter is derived from the fixed
// boundary table. The 1:1 relationship is structural: re-recording always
// overwrites, never duplicates and never rejects.
func (s *GradeService) RecordGrade(ctx context.Context, caps models.Capabilities, enrollmentID int64, marks float64, remark string) (*models.Grade, error) {
	if !caps.RecordGrades {
		return nil, apperrors.ErrPermissionDenied
	}
	if !models.ValidMarks(marks) {
		return nil, apperrors.ErrInvalidScore.WithDetails(map[string]interface{}{
			"enrollmentId": enrollmentID,
			"marks":        marks,
		})
	}

	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	grade := &models.Grade{
		EnrollmentID: enrollmentID,
		Marks:        marks,
		Letter:       models.LetterFromMarks(marks),
		Remark:       remark,
	}
	if err := s.grades.Upsert(ctx, grade); err != nil {
		return nil, err
	}

	s.notifyGradeRecorded(ctx, enrollment, grade)
	return grade, nil
}

// GetGrade retrieves the grade recorded for an enrollment, if any
func (s *GradeService) GetGrade(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("enrollment ID must be positive")
	}
	return s.grades.GetByEnrollment(ctx, enrollmentID)
}

func (s *GradeService) notifyGradeRecorded(ctx context.Context, enrollment *models.Enrollment, grade *models.Grade) {
	if s.notifier == nil {
		return
	}
	student, err := s.students.GetByID(ctx, enrollment.StudentID)
	if err != nil || student.UserID == nil {
		return
	}

	courseName := fmt.Sprintf("course #%d", enrollment.CourseID)
	if course, err := s.courses.GetByID(ctx, enrollment.CourseID); err == nil {
		courseName = fmt.Sprintf("%s (%s)", course.Name, course.Code)
	} else {
		logger.Warn().Err(err).Int64("courseID", enrollment.CourseID).Msg("Could not resolve course for grade notification")
	}

	s.notifier.NotifyUser(ctx, *student.UserID,
		fmt.Sprintf("A grade of %s has been recorded for %s", grade.Letter, courseName))
}
