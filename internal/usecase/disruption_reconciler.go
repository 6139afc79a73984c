package usecase

import (
	"context"
	"fmt"
	"strings"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/domain/repository"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/metrics"
)

// DisruptionChannel is the pub/sub channel disruption events are broadcast
// on. A downstream consumer can re-drive notification delivery from it.
const DisruptionChannel = "airnova:disruptions"

const maxSuggestedAlternatives = 3

// DisruptionReconciler applies a flight status transition and fans out
// notifications to affected users.
//
// The status update and the notification writes are not one transaction: a
// crash in between leaves the status changed with some users untold. The
// published event narrows that window but does not close it.
type DisruptionReconciler struct {
	flightRepo       repository.FlightRepository
	bookingRepo      repository.BookingRepository
	notificationRepo repository.NotificationRepository
	searcher         *FlightSearcher
	events           repository.EventPublisher
	metrics          *metrics.Metrics
	logger           logger.Logger
}

// NewDisruptionReconciler creates a new disruption reconciler. events may be
// nil when no broadcast is wanted.
func NewDisruptionReconciler(
	flightRepo repository.FlightRepository,
	bookingRepo repository.BookingRepository,
	notificationRepo repository.NotificationRepository,
	searcher *FlightSearcher,
	events repository.EventPublisher,
	m *metrics.Metrics,
	logger logger.Logger,
) *DisruptionReconciler {
	return &DisruptionReconciler{
		flightRepo:       flightRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		searcher:         searcher,
		events:           events,
		metrics:          m,
		logger:           logger,
	}
}

// Reconcile validates and persists the status transition, finds alternative
// flights for DELAYED/CANCELLED, and notifies every affected user exactly
// once: the user set is deduplicated before dispatch, so a user with two
// bookings on the flight receives one notification and is counted once.
// Returns ErrInvalidStatus before any write when the status is unknown, and
// ErrFlightNotFound when the flight does not exist.
func (d *DisruptionReconciler) Reconcile(ctx context.Context, flightID uint, newStatus string) (*entity.DisruptionEvent, error) {
	newStatus = strings.ToUpper(strings.TrimSpace(newStatus))
	switch newStatus {
	case entity.StatusOnTime, entity.StatusDelayed, entity.StatusCancelled:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	flight, err := d.flightRepo.FindDetail(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("fetching flight %d: %w", flightID, err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}
	oldStatus := flight.Status

	if err := d.flightRepo.UpdateStatus(ctx, flightID, newStatus); err != nil {
		return nil, fmt.Errorf("updating status of flight %d: %w", flightID, err)
	}

	bookings, err := d.bookingRepo.ListConfirmed(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("listing bookings for flight %d: %w", flightID, err)
	}

	var alternatives []entity.FlightDetail
	if newStatus == entity.StatusDelayed || newStatus == entity.StatusCancelled {
		alternatives, err = d.findAlternatives(ctx, flight)
		if err != nil {
			return nil, err
		}
	}

	message := buildDisruptionMessage(flight, newStatus, alternatives)
	notified := d.notifyUsers(ctx, bookings, message)

	event := &entity.DisruptionEvent{
		FlightID:          flightID,
		FlightNumber:      flight.FlightNumber,
		OldStatus:         oldStatus,
		NewStatus:         newStatus,
		BookingsAffected:  len(bookings),
		UsersNotified:     notified,
		AlternativesFound: len(alternatives),
		Alternatives:      alternatives,
	}

	if d.events != nil {
		if err := d.events.Publish(ctx, DisruptionChannel, event); err != nil {
			d.logger.Warn("disruption event publish failed", "flightId", flightID, "error", err)
		}
	}
	if d.metrics != nil {
		d.metrics.DisruptionsHandled.Inc()
	}
	d.logger.Info("disruption reconciled",
		"flightId", flightID, "newStatus", newStatus,
		"bookingsAffected", len(bookings), "usersNotified", notified,
		"alternativesFound", len(alternatives))

	return event, nil
}

// findAlternatives searches the same route and date and drops the disrupted
// flight itself, preserving the search's departure-time order.
func (d *DisruptionReconciler) findAlternatives(ctx context.Context, flight *entity.FlightDetail) ([]entity.FlightDetail, error) {
	results, err := d.searcher.Search(ctx, flight.SourceAirport, flight.DestinationAirport, flight.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("searching alternatives for flight %d: %w", flight.FlightID, err)
	}

	alternatives := make([]entity.FlightDetail, 0, len(results))
	for _, f := range results {
		if f.FlightID == flight.FlightID {
			continue
		}
		alternatives = append(alternatives, f)
	}
	return alternatives, nil
}

// notifyUsers writes one ALERT notification per unique booking owner and
// returns the number of users notified. Individual write failures are
// logged and skipped; the remaining users are still notified.
func (d *DisruptionReconciler) notifyUsers(ctx context.Context, bookings []entity.Booking, message string) int {
	seen := make(map[uint]bool, len(bookings))
	notified := 0

	for _, b := range bookings {
		if seen[b.UserID] {
			continue
		}
		seen[b.UserID] = true

		if err := d.notificationRepo.Insert(ctx, b.UserID, message, entity.NotificationAlert); err != nil {
			d.logger.Error("notification write failed", "userId", b.UserID, "error", err)
			continue
		}
		if d.metrics != nil {
			d.metrics.NotificationsSent.Inc()
		}
		notified++
	}
	return notified
}

// buildDisruptionMessage composes the human-readable alert, summarizing up
// to three alternatives as "<flight number> at <HH:MM>".
func buildDisruptionMessage(flight *entity.FlightDetail, newStatus string, alternatives []entity.FlightDetail) string {
	dep := flight.DepartureTime.Format("2006-01-02 15:04")

	var b strings.Builder
	switch newStatus {
	case entity.StatusDelayed:
		fmt.Fprintf(&b, "Your flight %s from %s to %s on %s is DELAYED.",
			flight.FlightNumber, flight.SourceAirport, flight.DestinationAirport, dep)
	case entity.StatusCancelled:
		fmt.Fprintf(&b, "Your flight %s from %s to %s on %s has been CANCELLED.",
			flight.FlightNumber, flight.SourceAirport, flight.DestinationAirport, dep)
	default:
		fmt.Fprintf(&b, "Status update: Your flight %s from %s to %s on %s is now %s.",
			flight.FlightNumber, flight.SourceAirport, flight.DestinationAirport, dep, newStatus)
	}

	if len(alternatives) > 0 {
		b.WriteString(" Suggested alternatives: ")
		parts := make([]string, 0, maxSuggestedAlternatives)
		for i, alt := range alternatives {
			if i == maxSuggestedAlternatives {
				break
			}
			parts = append(parts, fmt.Sprintf("%s at %s", alt.FlightNumber, alt.DepartureTime.Format("15:04")))
		}
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(".")
	}

	return b.String()
}
