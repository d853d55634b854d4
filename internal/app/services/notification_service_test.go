package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewNotificationService(fakeNotificationStore{store})

	svc.NotifyUser(ctx, 1, "You have been enrolled in Calculus I")
	svc.NotifyUser(ctx, 1, "A grade of A has been recorded")
	svc.NotifyUser(ctx, 2, "Other user's message")

	list, err := svc.ListNotifications(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first
	assert.Contains(t, list[0].Message, "grade")

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAllRead(ctx, 1))
	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	unread, err := svc.ListNotifications(ctx, 1, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	require.NoError(t, svc.ClearAll(ctx, 1))
	list, err = svc.ListNotifications(ctx, 1, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Other users are untouched
	count, err = svc.UnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifyUserIgnoresBlankInput(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewNotificationService(fakeNotificationStore{store})

	svc.NotifyUser(ctx, 0, "message")
	svc.NotifyUser(ctx, 1, "")

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
