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

func TestMarkAttendance(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 10, 7, 9, 30, 0, 0, time.UTC)

	setup := func() (*AttendanceService, *fakeStore) {
		store := newFakeStore()
		svc := NewAttendanceService(fakeAttendanceStore{store}, store, fakeCourseStore{store})
		return svc, store
	}

	t.Run("marks a sheet", func(t *testing.T) {
		svc, store := setup()
		s1 := seedStudent(store, "Aisha Bello")
		s2 := seedStudent(store, "Omar Diallo")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		result, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: s1.ID, Status: models.AttendancePresent},
			{StudentID: s2.ID, Status: models.AttendanceAbsent, Remark: "sick"},
		})
		require.NoError(t, err)
		require.Len(t, result.Applied, 2)
		assert.True(t, result.Applied[0].Created)
		assert.True(t, result.Applied[1].Created)

		// Sheet timestamps collapse to the calendar date
		assert.Equal(t, time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC), result.Date)
	})

	t.Run("resubmission overwrites", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Lina Haddad")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: student.ID, Status: models.AttendanceAbsent},
		})
		require.NoError(t, err)

		result, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: student.ID, Status: models.AttendancePresent},
		})
		require.NoError(t, err)
		require.Len(t, result.Applied, 1)
		assert.False(t, result.Applied[0].Created)

		records, err := svc.GetAttendance(ctx, student.ID, course.ID, day, day)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.AttendancePresent, records[0].Status)
	})

	t.Run("unknown student stops the sheet, keeps prior entries", func(t *testing.T) {
		svc, store := setup()
		s1 := seedStudent(store, "Aisha Bello")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		result, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: s1.ID, Status: models.AttendancePresent},
			{StudentID: 999, Status: models.AttendancePresent},
			{StudentID: s1.ID, Status: models.AttendanceLate},
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		require.NotNil(t, result)
		require.Len(t, result.Applied, 1)
		assert.Equal(t, s1.ID, result.Applied[0].StudentID)

		// The first entry stays applied
		records, listErr := svc.GetAttendance(ctx, s1.ID, course.ID, day, day)
		require.NoError(t, listErr)
		assert.Len(t, records, 1)
	})

	t.Run("unknown course", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Sam Osei")

		_, err := svc.MarkAttendance(ctx, teacherCaps, 999, day, []models.AttendanceEntry{
			{StudentID: student.ID, Status: models.AttendancePresent},
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("invalid status rejected before any write", func(t *testing.T) {
		svc, store := setup()
		student := seedStudent(store, "Sam Osei")
		course := seedCourse(store, "CS101", "Intro to Programming", 3)

		_, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: student.ID, Status: "napping"},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		records, listErr := svc.GetAttendance(ctx, student.ID, course.ID, day, day)
		require.NoError(t, listErr)
		assert.Empty(t, records)
	})

	t.Run("empty sheet rejected", func(t *testing.T) {
		svc, _ := setup()
		_, err := svc.MarkAttendance(ctx, teacherCaps, 1, day, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("requires mark attendance capability", func(t *testing.T) {
		svc, _ := setup()
		_, err := svc.MarkAttendance(ctx, noCaps, 1, day, []models.AttendanceEntry{
			{StudentID: 1, Status: models.AttendancePresent},
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestGetAttendanceRange(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewAttendanceService(fakeAttendanceStore{store}, store, fakeCourseStore{store})

	student := seedStudent(store, "Aisha Bello")
	course := seedCourse(store, "CS101", "Intro to Programming", 3)

	for dayOffset, status := range []models.AttendanceStatus{
		models.AttendancePresent, models.AttendanceAbsent, models.AttendancePresent,
	} {
		day := time.Date(2024, 10, 1+dayOffset, 0, 0, 0, 0, time.UTC)
		_, err := svc.MarkAttendance(ctx, teacherCaps, course.ID, day, []models.AttendanceEntry{
			{StudentID: student.ID, Status: status},
		})
		require.NoError(t, err)
	}

	records, err := svc.GetAttendance(ctx, student.ID, course.ID,
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].Date.Before(records[1].Date))

	_, err = svc.GetAttendance(ctx, student.ID, course.ID,
		time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
