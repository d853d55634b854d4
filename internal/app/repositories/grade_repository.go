package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/dberrors"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// Upsert records the grade for an enrollment, replacing any existing one.
// The unique index on enrollment_id enforces the 1:1 relationship
// structurally; re-submission is an overwrite, never a second row.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO grades (enrollment_id, marks, letter, remark)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (enrollment_id)
		DO UPDATE SET marks = EXCLUDED.marks, letter = EXCLUDED.letter, remark = EXCLUDED.remark, updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		grade.EnrollmentID, grade.Marks, grade.Letter, grade.Remark,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "grades_enrollment_id_fkey") {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error recording grade: %w", err)
	}
	return nil
}

// GetByEnrollment retrieves the grade for an enrollment, if any
func (r *GradeRepository) GetByEnrollment(ctx context.Context, enrollmentID int64) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.QueryRow(ctx, `
		SELECT id, enrollment_id, marks, letter, remark, created_at, updated_at
		FROM grades
		WHERE enrollment_id = $1`, enrollmentID,
	).Scan(&grade.ID, &grade.EnrollmentID, &grade.Marks, &grade.Letter, &grade.Remark, &grade.CreatedAt, &grade.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}
	return &grade, nil
}
