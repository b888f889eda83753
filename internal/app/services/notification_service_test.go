package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PersistsWithoutChannel(t *testing.T) {
	h := newHarness(t, nil)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)

	assert.True(t, result.Persisted)
	assert.Equal(t, DeliveryNoChannel, result.Delivery)
	stored := h.store.notificationsFor(h.student.ID)
	require.Len(t, stored, 1)
	assert.Equal(t, "hello", stored[0].Message)
	assert.False(t, stored[0].IsRead)
}

func TestNotify_PushesOnceToOpenChannel(t *testing.T) {
	h := newHarness(t, nil)
	ch := newRecordingChannel()
	h.registry.Register(h.student.ID, ch)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "Your document \"NID\" has been approved.")
	require.NoError(t, err)

	assert.Equal(t, DeliveryDelivered, result.Delivery)
	sent := ch.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, websocket.TypeNotification, sent[0].Type)
	assert.Equal(t, result.Notification.Message, sent[0].Message)
}

func TestNotify_ClosedChannelStillSucceeds(t *testing.T) {
	h := newHarness(t, nil)
	ch := newRecordingChannel()
	ch.Close()
	h.registry.Register(h.student.ID, ch)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)

	assert.True(t, result.Persisted)
	assert.Equal(t, DeliveryChannelClosed, result.Delivery)
	assert.Empty(t, ch.Sent())
	assert.Len(t, h.store.notificationsFor(h.student.ID), 1)
}

func TestNotify_SendFailureIsReported(t *testing.T) {
	h := newHarness(t, nil)
	ch := newRecordingChannel()
	ch.sendFn = func() error { return websocket.ErrSendBufferFull }
	h.registry.Register(h.student.ID, ch)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, DeliveryFailed, result.Delivery)
	assert.True(t, result.Persisted)
}

func TestNotify_RelaysWhenNoLocalChannel(t *testing.T) {
	relay := &fakeRelay{}
	h := newHarness(t, relay)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, DeliveryRelayed, result.Delivery)
	assert.Equal(t, []int64{h.student.ID}, relay.published)

	// a local channel wins over the relay
	ch := newRecordingChannel()
	h.registry.Register(h.student.ID, ch)
	result, err = h.notifications.Notify(context.Background(), h.student.ID, "again")
	require.NoError(t, err)
	assert.Equal(t, DeliveryDelivered, result.Delivery)
	assert.Len(t, relay.published, 1)
}

func TestNotify_RelaysPastStaleClosedChannel(t *testing.T) {
	relay := &fakeRelay{}
	h := newHarness(t, relay)
	ch := newRecordingChannel()
	ch.Close()
	h.registry.Register(h.student.ID, ch)

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, DeliveryRelayed, result.Delivery)
	assert.Equal(t, []int64{h.student.ID}, relay.published)
	assert.Empty(t, ch.Sent())
}

func TestNotify_RelayFailureDoesNotFail(t *testing.T) {
	h := newHarness(t, &fakeRelay{err: errors.New("redis down")})

	result, err := h.notifications.Notify(context.Background(), h.student.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, DeliveryFailed, result.Delivery)
	assert.True(t, result.Persisted)
}

func TestNotify_StorageFailureReturnsError(t *testing.T) {
	store := newFakeStore()
	registry := websocket.NewRegistry()
	ch := newRecordingChannel()
	registry.Register(1, ch)
	svc := NewNotificationService(fakeNotificationRepo{fakeStore: store, err: errors.New("db down")}, registry, nil, 20, zerolog.Nop())

	_, err := svc.Notify(context.Background(), 1, "hello")
	require.Error(t, err)
	assert.Empty(t, ch.Sent())
}

func TestNotify_RejectsInvalidInput(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.notifications.Notify(context.Background(), 0, "hello")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = h.notifications.Notify(context.Background(), h.student.ID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, h.store.notificationsFor(h.student.ID))
}

func TestNotificationInbox(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three"} {
		_, err := h.notifications.Notify(ctx, h.student.ID, msg)
		require.NoError(t, err)
	}

	list, err := h.notifications.ListForUser(ctx, h.student.ID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "three", list[0].Message)

	count, err := h.notifications.UnreadCount(ctx, h.student.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	updated, err := h.notifications.MarkAllRead(ctx, h.student.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated)

	count, err = h.notifications.UnreadCount(ctx, h.student.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
