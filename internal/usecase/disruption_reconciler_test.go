package usecase

import (
	"context"
	"testing"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disruptedFlight() entity.FlightDetail {
	return entity.FlightDetail{
		FlightID:      7,
		FlightNumber:  "AN205",
		Status:        entity.StatusOnTime,
		DepartureTime: time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC),
		SourceAirport: "BLR", DestinationAirport: "DEL",
	}
}

func newTestReconciler(flights *fakeFlightRepo, bookings *fakeBookingRepo, notifications *fakeNotificationRepo, events *fakePublisher) *DisruptionReconciler {
	searcher := NewFlightSearcher(flights, logger.NewNopLogger())
	var pub repository.EventPublisher
	if events != nil {
		pub = events
	}
	return NewDisruptionReconciler(flights, bookings, notifications, searcher, pub, nil, logger.NewNopLogger())
}

func TestReconcileDedupesUsersBeforeDispatch(t *testing.T) {
	flights := newFakeFlightRepo()
	flights.details[7] = disruptedFlight()
	flights.searchResults = []entity.FlightDetail{
		{FlightID: 7, FlightNumber: "AN205", DepartureTime: time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC)},
		{FlightID: 8, FlightNumber: "AN209", DepartureTime: time.Date(2025, 6, 20, 11, 30, 0, 0, time.UTC)},
		{FlightID: 9, FlightNumber: "AN213", DepartureTime: time.Date(2025, 6, 20, 17, 45, 0, 0, time.UTC)},
	}
	// three confirmed bookings owned by users {1, 2, 2}
	bookings := &fakeBookingRepo{confirmed: map[uint][]entity.Booking{7: {
		{BookingID: 1, UserID: 1, FlightID: 7, Status: entity.BookingConfirmed},
		{BookingID: 2, UserID: 2, FlightID: 7, Status: entity.BookingConfirmed},
		{BookingID: 3, UserID: 2, FlightID: 7, Status: entity.BookingConfirmed},
	}}}
	notifications := &fakeNotificationRepo{}
	events := &fakePublisher{}

	event, err := newTestReconciler(flights, bookings, notifications, events).
		Reconcile(context.Background(), 7, "DELAYED")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusOnTime, event.OldStatus)
	assert.Equal(t, entity.StatusDelayed, event.NewStatus)
	assert.Equal(t, 3, event.BookingsAffected)
	assert.Equal(t, 2, event.UsersNotified)
	assert.Equal(t, 2, event.AlternativesFound)

	// one notification per unique user, none per extra booking
	require.Len(t, notifications.inserts, 2)
	assert.Equal(t, uint(1), notifications.inserts[0].UserID)
	assert.Equal(t, uint(2), notifications.inserts[1].UserID)
	for _, n := range notifications.inserts {
		assert.Equal(t, entity.NotificationAlert, n.Type)
		assert.Contains(t, n.Message, "AN205")
		assert.Contains(t, n.Message, "DELAYED")
		assert.Contains(t, n.Message, "AN209 at 11:30")
		assert.Contains(t, n.Message, "AN213 at 17:45")
	}

	// the disrupted flight itself is excluded, order preserved
	require.Len(t, event.Alternatives, 2)
	assert.Equal(t, uint(8), event.Alternatives[0].FlightID)
	assert.Equal(t, uint(9), event.Alternatives[1].FlightID)

	// status persisted and event broadcast
	assert.Equal(t, entity.StatusDelayed, flights.statusWrites[7])
	require.Len(t, events.published, 1)
	assert.Equal(t, DisruptionChannel, events.channels[0])
}

func TestReconcileInvalidStatusRejectsBeforeWrite(t *testing.T) {
	flights := newFakeFlightRepo()
	flights.details[7] = disruptedFlight()
	notifications := &fakeNotificationRepo{}

	_, err := newTestReconciler(flights, &fakeBookingRepo{}, notifications, nil).
		Reconcile(context.Background(), 7, "FOO")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	assert.Empty(t, flights.statusWrites, "no status write may happen on rejection")
	assert.Empty(t, notifications.inserts)
}

func TestReconcileUnknownFlight(t *testing.T) {
	_, err := newTestReconciler(newFakeFlightRepo(), &fakeBookingRepo{}, &fakeNotificationRepo{}, nil).
		Reconcile(context.Background(), 404, "CANCELLED")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestReconcileOnTimeSkipsAlternativeSearch(t *testing.T) {
	flights := newFakeFlightRepo()
	flight := disruptedFlight()
	flight.Status = entity.StatusDelayed
	flights.details[7] = flight
	flights.searchResults = []entity.FlightDetail{
		{FlightID: 8, FlightNumber: "AN209", DepartureTime: time.Date(2025, 6, 20, 11, 30, 0, 0, time.UTC)},
	}
	bookings := &fakeBookingRepo{confirmed: map[uint][]entity.Booking{7: {
		{BookingID: 1, UserID: 5, FlightID: 7, Status: entity.BookingConfirmed},
	}}}
	notifications := &fakeNotificationRepo{}

	event, err := newTestReconciler(flights, bookings, notifications, nil).
		Reconcile(context.Background(), 7, "ON_TIME")
	require.NoError(t, err)

	assert.Equal(t, 0, event.AlternativesFound)
	assert.Empty(t, event.Alternatives)
	require.Len(t, notifications.inserts, 1)
	assert.Contains(t, notifications.inserts[0].Message, "is now ON_TIME")
	assert.NotContains(t, notifications.inserts[0].Message, "Suggested alternatives")
}

func TestReconcileCancelledMessageWording(t *testing.T) {
	flights := newFakeFlightRepo()
	flights.details[7] = disruptedFlight()
	bookings := &fakeBookingRepo{confirmed: map[uint][]entity.Booking{7: {
		{BookingID: 1, UserID: 1, FlightID: 7, Status: entity.BookingConfirmed},
	}}}
	notifications := &fakeNotificationRepo{}

	event, err := newTestReconciler(flights, bookings, notifications, nil).
		Reconcile(context.Background(), 7, "cancelled")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCancelled, event.NewStatus)
	require.Len(t, notifications.inserts, 1)
	assert.Contains(t, notifications.inserts[0].Message, "has been CANCELLED")
}

func TestReconcileMessageCapsAlternativesAtThree(t *testing.T) {
	flights := newFakeFlightRepo()
	flights.details[7] = disruptedFlight()
	flights.searchResults = []entity.FlightDetail{
		{FlightID: 8, FlightNumber: "AN209", DepartureTime: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)},
		{FlightID: 9, FlightNumber: "AN213", DepartureTime: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)},
		{FlightID: 10, FlightNumber: "AN217", DepartureTime: time.Date(2025, 6, 20, 11, 0, 0, 0, time.UTC)},
		{FlightID: 11, FlightNumber: "AN221", DepartureTime: time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)},
	}
	bookings := &fakeBookingRepo{confirmed: map[uint][]entity.Booking{7: {
		{BookingID: 1, UserID: 1, FlightID: 7, Status: entity.BookingConfirmed},
	}}}
	notifications := &fakeNotificationRepo{}

	event, err := newTestReconciler(flights, bookings, notifications, nil).
		Reconcile(context.Background(), 7, "CANCELLED")
	require.NoError(t, err)

	// all four are reported in the event, only three make the message
	assert.Equal(t, 4, event.AlternativesFound)
	msg := notifications.inserts[0].Message
	assert.Contains(t, msg, "AN209")
	assert.Contains(t, msg, "AN213")
	assert.Contains(t, msg, "AN217")
	assert.NotContains(t, msg, "AN221")
}
