package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/dberrors"
	"github.com/ecamli/registra/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new enrollment. The unique index on the
// (student, course, semester, academic_year) tuple is the uniqueness check:
// a concurrent duplicate loses at the index, not at a read-then-write.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, course_id, semester, academic_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		enrollment.StudentID, enrollment.CourseID, enrollment.Semester, enrollment.AcademicYear,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_course_term_key") {
			logger.Warn().
				Int64("studentID", enrollment.StudentID).
				Int64("courseID", enrollment.CourseID).
				Str("semester", enrollment.Semester).
				Str("academicYear", enrollment.AcademicYear).
				Msg("Duplicate enrollment rejected")
			return apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_student_id_fkey") {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "enrollments_course_id_fkey") {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by primary key
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, course_id, semester, academic_year, created_at
		FROM enrollments
		WHERE id = $1`, id,
	).Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.Semester, &enrollment.AcademicYear, &enrollment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return &enrollment, nil
}

// ListByStudentTerm retrieves a student's enrollments for one term with the
// course relation populated, ordered by course code.
func (r *EnrollmentRepository) ListByStudentTerm(ctx context.Context, studentID int64, semester, academicYear string) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.
		Select("e.id", "e.student_id", "e.course_id", "e.semester", "e.academic_year", "e.created_at",
			"c.id", "c.code", "c.name", "c.credit_hours", "c.department", "c.created_at").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID, "e.semester": semester, "e.academic_year": academicYear}).
		OrderBy("c.code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
			&enrollment.Semester, &enrollment.AcademicYear, &enrollment.CreatedAt,
			&course.ID, &course.Code, &course.Name, &course.CreditHours, &course.Department, &course.CreatedAt,
		); err != nil {
			return nil, err
		}
		enrollment.Course = &course
		enrollments = append(enrollments, &enrollment)
	}
	return enrollments, rows.Err()
}

// Delete removes a single enrollment and its grade. Attendance is keyed on
// (student, course, date) rather than the enrollment, so it stays.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM grades WHERE enrollment_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting enrollment grade: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
