package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/db"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/dberrors"
	"github.com/ecamli/registra/internal/pkg/logger"
)

// allocLockClass namespaces the per-year advisory lock used during
// identifier allocation so it cannot collide with other lock users.
const allocLockClass = 4271

// StudentRepository handles student database operations
type StudentRepository struct {
	db           *pgxpool.Pool
	sb           squirrel.StatementBuilderType
	allocRetries int
}

// NewStudentRepository creates a new StudentRepository. allocRetries bounds
// the automatic retry on identifier allocation conflicts.
func NewStudentRepository(db *pgxpool.Pool, allocRetries int) *StudentRepository {
	if allocRetries < 1 {
		allocRetries = 1
	}
	return &StudentRepository{
		db:           db,
		sb:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		allocRetries: allocRetries,
	}
}

// Create inserts a new student, allocating the next identifier for the
// student's enrollment year inside the same transaction. The read-then-
// increment runs under a per-year advisory lock so concurrent allocations
// serialize; the unique index on identifier is the backstop, and a bounded
// retry absorbs the rare conflict before AllocationConflict surfaces.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	year := student.EnrollmentYear()

	var lastErr error
	for attempt := 0; attempt < r.allocRetries; attempt++ {
		err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
			identifier, err := allocateIdentifier(ctx, tx, year)
			if err != nil {
				return err
			}
			student.Identifier = identifier

			return tx.QueryRow(ctx, `
				INSERT INTO students (identifier, full_name, date_of_birth, gender, email, phone, address, photo_key, enrollment_date, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING id, created_at`,
				student.Identifier, student.FullName, student.DateOfBirth, student.Gender,
				student.Email, student.Phone, student.Address, student.PhotoKey,
				student.EnrollmentDate, student.UserID,
			).Scan(&student.ID, &student.CreatedAt)
		})

		if err == nil {
			logger.Info().Str("identifier", student.Identifier).Int64("studentID", student.ID).Msg("Student created")
			return nil
		}

		if dberrors.IsDuplicateConstraintError(err, "students_identifier_key") {
			logger.Warn().Str("identifier", student.Identifier).Int("attempt", attempt+1).Msg("Identifier allocation collision, retrying")
			lastErr = err
			continue
		}

		return fmt.Errorf("error creating student: %w", err)
	}

	return fmt.Errorf("%w: year %d: %v", apperrors.ErrAllocationConflict, year, lastErr)
}

// allocateIdentifier finds the largest existing sequence for the year and
// returns year/seq+1 formatted. Must run inside a transaction; the advisory
// lock it takes is released at transaction end.
func allocateIdentifier(ctx context.Context, tx pgx.Tx, year int) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, allocLockClass, year); err != nil {
		return "", fmt.Errorf("error acquiring allocation lock: %w", err)
	}

	prefix := models.IdentifierYearPrefix(year)
	var maxSeq int
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(SUBSTRING(identifier FROM $1) AS INTEGER)), 0)
		FROM students
		WHERE identifier LIKE $2`,
		len(prefix)+1, prefix+"%",
	).Scan(&maxSeq)
	if err != nil {
		return "", fmt.Errorf("error scanning identifier sequence: %w", err)
	}

	return models.FormatStudentIdentifier(year, maxSeq+1), nil
}

var studentColumns = []string{"id", "identifier", "full_name", "date_of_birth", "gender", "email", "phone", "address", "photo_key", "enrollment_date", "user_id", "created_at"}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.Identifier, &student.FullName, &student.DateOfBirth,
		&student.Gender, &student.Email, &student.Phone, &student.Address,
		&student.PhotoKey, &student.EnrollmentDate, &student.UserID, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByIdentifier retrieves a student by the generated identifier
func (r *StudentRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"identifier": identifier}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// List retrieves all students ordered by identifier
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").OrderBy("identifier").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Exists reports whether a student row exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Delete removes a student and cascades to dependent records: grades owned by
// the student's enrollments, the enrollments themselves, and the student's
// attendance rows. The traversal is explicit; the schema carries no ON DELETE
// CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM grades WHERE enrollment_id IN (SELECT id FROM enrollments WHERE student_id = $1)`, id); err != nil {
			return fmt.Errorf("error deleting student grades: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student enrollments: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student attendance: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		logger.Info().Int64("studentID", id).Msg("Student deleted with cascading records")
		return nil
	})
}
