package services

import (
	"context"
	"errors"
	"time"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/helpers"
)

// ReportService assembles read-only aggregates over enrollments, grades and
// attendance for downstream rendering. It never mutates records and requires
// no capability.
type ReportService struct {
	students    StudentStore
	enrollments EnrollmentStore
	grades      GradeStore
	attendance  AttendanceStore
}

// NewReportService creates a new report service instance
func NewReportService(students StudentStore, enrollments EnrollmentStore, grades GradeStore, attendance AttendanceStore) *ReportService {
	return &ReportService{
		students:    students,
		enrollments: enrollments,
		grades:      grades,
		attendance:  attendance,
	}
}

// BuildReportCard aggregates a student's graded enrollments for one term into
// a report card with a credit-weighted GPA. Enrollments without a recorded
// grade are silently excluded. An unknown or deleted student yields an empty
// report card, not an error: after a cascade delete there is simply nothing
// to report.
func (s *ReportService) BuildReportCard(ctx context.Context, studentID int64, semester, academicYear string) (*models.ReportCard, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("student ID must be positive")
	}

	card := &models.ReportCard{
		StudentID:    studentID,
		Semester:     semester,
		AcademicYear: academicYear,
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return card, nil
		}
		return nil, err
	}
	card.Identifier = student.Identifier
	card.StudentName = student.FullName

	enrollments, err := s.enrollments.ListByStudentTerm(ctx, studentID, semester, academicYear)
	if err != nil {
		return nil, err
	}

	for _, enrollment := range enrollments {
		grade, err := s.grades.GetByEnrollment(ctx, enrollment.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if enrollment.Course == nil {
			// Store contract requires the course relation on term listings
			return nil, errors.New("enrollment listing missing course relation")
		}
		card.Lines = append(card.Lines, models.ReportLine{
			CourseCode:  enrollment.Course.Code,
			CourseName:  enrollment.Course.Name,
			CreditHours: enrollment.Course.CreditHours,
			Marks:       grade.Marks,
			Letter:      grade.Letter,
			Remark:      grade.Remark,
		})
	}

	card.TotalCredits, card.GPA = models.ComputeGPA(card.Lines)
	return card, nil
}

// BuildAttendanceSummary aggregates a student's attendance in one course over
// a date range. Zero recorded classes yields a zero percentage, never a
// division fault.
func (s *ReportService) BuildAttendanceSummary(ctx context.Context, studentID, courseID int64, from, to time.Time) (*models.AttendanceSummary, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, apperrors.NewValidationError("student and course IDs must be positive")
	}
	from, to = helpers.DateOnly(from), helpers.DateOnly(to)
	if to.Before(from) {
		return nil, apperrors.NewValidationError("date range end precedes start")
	}

	total, present, err := s.attendance.CountRange(ctx, studentID, courseID, from, to)
	if err != nil {
		return nil, err
	}

	return &models.AttendanceSummary{
		StudentID:    studentID,
		CourseID:     courseID,
		From:         from,
		To:           to,
		TotalClasses: total,
		PresentCount: present,
		Percentage:   models.ComputePresentPercentage(present, total),
	}, nil
}
