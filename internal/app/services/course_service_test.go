package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()

	setup := func() (*CourseService, *fakeStore) {
		store := newFakeStore()
		return NewCourseService(fakeCourseStore{store}), store
	}

	t.Run("creates a course", func(t *testing.T) {
		svc, _ := setup()
		course := &models.Course{Code: "CS101", Name: "Intro to Programming", CreditHours: 3}
		require.NoError(t, svc.CreateCourse(ctx, adminCaps, course))
		assert.NotZero(t, course.ID)

		got, err := svc.GetCourseByCode(ctx, "CS101")
		require.NoError(t, err)
		assert.Equal(t, "Intro to Programming", got.Name)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		svc, store := setup()
		seedCourse(store, "CS101", "Intro to Programming", 3)

		err := svc.CreateCourse(ctx, adminCaps, &models.Course{Code: "CS101", Name: "Other", CreditHours: 3})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, _ := setup()

		err := svc.CreateCourse(ctx, adminCaps, &models.Course{Code: "cs101", Name: "Lowercase code", CreditHours: 3})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		err = svc.CreateCourse(ctx, adminCaps, &models.Course{Code: "CS101", Name: "  ", CreditHours: 3})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		err = svc.CreateCourse(ctx, adminCaps, &models.Course{Code: "CS101", Name: "Zero credits", CreditHours: 0})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("requires manage records capability", func(t *testing.T) {
		svc, _ := setup()
		err := svc.CreateCourse(ctx, teacherCaps, &models.Course{Code: "CS101", Name: "Intro", CreditHours: 3})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestDeleteCourseCascades(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCourseService(fakeCourseStore{store})

	student := seedStudent(store, "Aisha Bello")
	course := seedCourse(store, "CS101", "Intro to Programming", 3)
	enrollment := &models.Enrollment{StudentID: student.ID, CourseID: course.ID, Semester: "Fall", AcademicYear: "2024-2025"}
	require.NoError(t, fakeEnrollmentStore{store}.Create(ctx, enrollment))
	require.NoError(t, fakeGradeStore{store}.Upsert(ctx, &models.Grade{EnrollmentID: enrollment.ID, Marks: 85, Letter: models.LetterB}))

	require.NoError(t, svc.DeleteCourse(ctx, adminCaps, course.ID))

	_, err := svc.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = fakeEnrollmentStore{store}.GetByID(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = fakeGradeStore{store}.GetByEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
