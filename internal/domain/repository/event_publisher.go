package repository

import "context"

// EventPublisher broadcasts domain events to interested consumers.
// Publishing is best effort: a failed publish must not fail the operation
// that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, event interface{}) error
}
