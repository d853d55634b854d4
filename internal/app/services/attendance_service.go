package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/helpers"
)

// AttendanceService records per-student, per-course, per-day attendance with
// idempotent upsert semantics.
type AttendanceService struct {
	attendance AttendanceStore
	students   StudentStore
	courses    CourseStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendance AttendanceStore, students StudentStore, courses CourseStore) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		students:   students,
		courses:    courses,
	}
}

// MarkAttendance applies one attendance sheet: an upsert per entry, keyed on
// (student, course, date), so re-submitting the same sheet is idempotent and
// the latest submission's status wins. Entries are processed in order and the
// batch is not atomic: on the first entry whose student does not exist the
// error is returned together with the MarkResult of everything already
// applied — partial progress is observable, never rolled back.
func (s *AttendanceService) MarkAttendance(ctx context.Context, caps models.Capabilities, courseID int64, date time.Time, entries []models.AttendanceEntry) (*models.MarkResult, error) {
	if !caps.MarkAttendance {
		return nil, apperrors.ErrPermissionDenied
	}
	if len(entries) == 0 {
		return nil, apperrors.NewValidationError("attendance sheet has no entries")
	}
	for _, entry := range entries {
		if !entry.Status.Valid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown attendance status %q", entry.Status))
		}
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	day := helpers.DateOnly(date)
	result := &models.MarkResult{CourseID: courseID, Date: day}

	for _, entry := range entries {
		exists, err := s.students.Exists(ctx, entry.StudentID)
		if err != nil {
			return result, fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return result, apperrors.ErrStudentNotFound.WithDetails(map[string]interface{}{
				"studentId": entry.StudentID,
			})
		}

		attendance := &models.Attendance{
			StudentID: entry.StudentID,
			CourseID:  courseID,
			Date:      day,
			Status:    entry.Status,
			Remark:    entry.Remark,
		}
		created, err := s.attendance.Upsert(ctx, attendance)
		if err != nil {
			return result, err
		}
		result.Applied = append(result.Applied, models.EntryResult{
			StudentID: entry.StudentID,
			Created:   created,
		})
	}

	return result, nil
}

// GetAttendance retrieves a student's attendance in one course over a date
// range, ordered by date ascending.
func (s *AttendanceService) GetAttendance(ctx context.Context, studentID, courseID int64, from, to time.Time) ([]*models.Attendance, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, apperrors.NewValidationError("student and course IDs must be positive")
	}
	from, to = helpers.DateOnly(from), helpers.DateOnly(to)
	if to.Before(from) {
		return nil, apperrors.NewValidationError("date range end precedes start")
	}
	return s.attendance.ListRange(ctx, studentID, courseID, from, to)
}
