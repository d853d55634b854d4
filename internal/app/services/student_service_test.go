package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
)

func validStudent() *models.Student {
	return &models.Student{
		FullName:       "Aisha Bello",
		DateOfBirth:    time.Date(2006, 3, 15, 0, 0, 0, 0, time.UTC),
		Gender:         models.GenderFemale,
		Email:          "aisha@example.com",
		EnrollmentDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates identifier on create", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		student := validStudent()
		require.NoError(t, svc.CreateStudent(ctx, adminCaps, student))
		assert.Equal(t, "STU20240001", student.Identifier)
		assert.NotZero(t, student.ID)
	})

	t.Run("sequential creates get consecutive identifiers", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		var identifiers []string
		for i := 0; i < 3; i++ {
			student := validStudent()
			require.NoError(t, svc.CreateStudent(ctx, adminCaps, student))
			identifiers = append(identifiers, student.Identifier)
		}
		assert.Equal(t, []string{"STU20240001", "STU20240002", "STU20240003"}, identifiers)
	})

	t.Run("sequences are per enrollment year", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		first := validStudent()
		require.NoError(t, svc.CreateStudent(ctx, adminCaps, first))

		second := validStudent()
		second.EnrollmentDate = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, svc.CreateStudent(ctx, adminCaps, second))

		assert.Equal(t, "STU20240001", first.Identifier)
		assert.Equal(t, "STU20250001", second.Identifier)
	})

	t.Run("requires manage records capability", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		err := svc.CreateStudent(ctx, teacherCaps, validStudent())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("rejects invalid gender", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		student := validStudent()
		student.Gender = "unknown"
		err := svc.CreateStudent(ctx, adminCaps, student)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects birth date after enrollment", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		student := validStudent()
		student.DateOfBirth = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		err := svc.CreateStudent(ctx, adminCaps, student)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("defaults enrollment date to today", func(t *testing.T) {
		svc := NewStudentService(newFakeStore())

		student := validStudent()
		student.EnrollmentDate = time.Time{}
		require.NoError(t, svc.CreateStudent(ctx, adminCaps, student))
		assert.Equal(t, time.Now().Year(), student.EnrollmentDate.Year())
	})
}

func TestGetStudentByIdentifier(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewStudentService(store)
	created := seedStudent(store, "Omar Diallo")

	found, err := svc.GetStudentByIdentifier(ctx, created.Identifier)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetStudentByIdentifier(ctx, "not-an-identifier")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetStudentByIdentifier(ctx, "STU20990001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewStudentService(store)
	student := seedStudent(store, "Lina Haddad")

	t.Run("requires manage records capability", func(t *testing.T) {
		err := svc.DeleteStudent(ctx, noCaps, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("removes student and dependents", func(t *testing.T) {
		course := seedCourse(store, "MATH101", "Calculus I", 4)
		enrollment := &models.Enrollment{StudentID: student.ID, CourseID: course.ID, Semester: "Fall", AcademicYear: "2024-2025"}
		require.NoError(t, fakeEnrollmentStore{store}.Create(ctx, enrollment))
		require.NoError(t, fakeGradeStore{store}.Upsert(ctx, &models.Grade{EnrollmentID: enrollment.ID, Marks: 91, Letter: models.LetterA}))

		require.NoError(t, svc.DeleteStudent(ctx, adminCaps, student.ID))

		_, err := svc.GetStudent(ctx, student.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = fakeGradeStore{store}.GetByEnrollment(ctx, enrollment.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown student", func(t *testing.T) {
		err := svc.DeleteStudent(ctx, adminCaps, 9999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
