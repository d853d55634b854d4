package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()

	setup := func() (*EnrollmentService, *fakeStore) {
		store := newFakeStore()
		svc := NewEnrollmentService(fakeEnrollmentStore{store}, store, fakeCourseStore{store}, nil)
		return svc, store
	}

	t.Run("creates enrollment with course details", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Aisha Bello")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		enrollment, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
		require.NoError(t, err)
		assert.NotZero(t, enrollment.ID)
		require.NotNil(t, enrollment.Course)
		assert.Equal(t, "CS101", enrollment.Course.Code)
	})

	t.Run("duplicate term enrollment rejected", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Omar Diallo")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
		require.NoError(t, err)

		_, err = svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEnrollment)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("same course different semester allowed", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Lina Haddad")
		course := seedCourse(store, "MATH101", "Calculus I", 4)

		_, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
		require.NoError(t, err)
		_, err = svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Spring", "2024-2025")
		require.NoError(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		svc, store := setup()
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.Enroll(ctx, adminCaps, 42, course.ID, "Fall", "2024-2025")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Sam Osei")

		_, err := svc.Enroll(ctx, adminCaps, student.ID, 42, "Fall", "2024-2025")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("malformed academic year", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Sam Osei")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "24-25")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("requires manage records capability", func(t *testing.T) {
		svc, _ := setup()
		_, err := svc.Enroll(ctx, teacherCaps, 1, 1, "Fall", "2024-2025")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("notifies linked account", func(t *testing.T) {
		store := newFakeStore()
		notifications := fakeNotificationStore{store}
		svc := NewEnrollmentService(fakeEnrollmentStore{store}, store, fakeCourseStore{store},
			NewNotificationService(notifications))

		student := seedStudent(store, "Aisha Bello")
		userID := int64(777)
		store.students[student.ID].UserID = &userID
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
		require.NoError(t, err)

		count, err := notifications.UnreadCount(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewEnrollmentService(fakeEnrollmentStore{store}, store, fakeCourseStore{store}, nil)

	student := seedStudent(store, "Omar Diallo")
	course := seedCourse(store, "PHY101", "General Physics I", 4)
	enrollment, err := svc.Enroll(ctx, adminCaps, student.ID, course.ID, "Fall", "2024-2025")
	require.NoError(t, err)
	require.NoError(t, fakeGradeStore{store}.Upsert(ctx, &models.Grade{EnrollmentID: enrollment.ID, Marks: 85, Letter: models.LetterB}))

	require.NoError(t, svc.Withdraw(ctx, adminCaps, enrollment.ID))

	_, err = svc.GetEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Withdrawing takes the grade with it
	_, err = fakeGradeStore{store}.GetByEnrollment(ctx, enrollment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
