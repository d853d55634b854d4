package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/dberrors"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts or overwrites the row for (student, course, date) in one
// atomic statement, so two concurrent marks for the same key cannot both
// insert. Returns whether a new row was created; xmax = 0 only holds for
// freshly inserted tuples.
func (r *AttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) (created bool, err error) {
	err = r.db.QueryRow(ctx, `
		INSERT INTO attendance (student_id, course_id, date, status, remark)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, course_id, date)
		DO UPDATE SET status = EXCLUDED.status, remark = EXCLUDED.remark, updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0)`,
		attendance.StudentID, attendance.CourseID, attendance.Date, attendance.Status, attendance.Remark,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt, &created)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "") {
			return false, fmt.Errorf("attendance references missing student or course: %w", err)
		}
		return false, fmt.Errorf("error upserting attendance: %w", err)
	}
	return created, nil
}

// ListRange retrieves a student's attendance in one course over a date range,
// ordered by date ascending.
func (r *AttendanceRepository) ListRange(ctx context.Context, studentID, courseID int64, from, to time.Time) ([]*models.Attendance, error) {
	sql, args, err := r.sb.
		Select("id", "student_id", "course_id", "date", "status", "remark", "created_at", "updated_at").
		From("attendance").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Status, &a.Remark, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, &a)
	}
	return records, rows.Err()
}

// CountRange returns total rows and present rows for a student's attendance
// in one course over a date range.
func (r *AttendanceRepository) CountRange(ctx context.Context, studentID, courseID int64, from, to time.Time) (total, present int, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1)
		FROM attendance
		WHERE student_id = $2 AND course_id = $3 AND date BETWEEN $4 AND $5`,
		models.AttendancePresent, studentID, courseID, from, to,
	).Scan(&total, &present)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting attendance: %w", err)
	}
	return total, present, nil
}
