// Package notifications emits fire-and-forget events on reservation status
// transitions. Delivery failure is logged and swallowed; the booking flow
// never depends on it.
package notifications

import (
	"context"
	"time"

	"campuspark/pkg/kafka"
	"campuspark/pkg/logger"
	"campuspark/pkg/model"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationExtended  = "reservation.extended"
	EventReservationCancelled = "reservation.cancelled"
)

type StatusChangeEvent struct {
	ReservationID string                  `json:"reservation_id"`
	UserID        string                  `json:"user_id"`
	LotID         string                  `json:"lot_id"`
	OldStatus     model.ReservationStatus `json:"old_status"`
	NewStatus     model.ReservationStatus `json:"new_status"`
	AmountCents   int64                   `json:"amount_cents"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

type Publisher interface {
	PublishStatusChange(ctx context.Context, eventType string, event StatusChangeEvent)
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) PublishStatusChange(ctx context.Context, eventType string, event StatusChangeEvent) {
	msg := kafka.NewMessage().
		WithKey(event.ReservationID). // per-reservation ordering
		WithValue(event).
		WithEventType(eventType).
		WithSource("reservations").
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish status change event",
			"event_type", eventType,
			"reservation_id", event.ReservationID,
			"error", err,
		)
		return
	}

	p.log.Debug("Published status change event",
		"event_type", eventType,
		"reservation_id", event.ReservationID,
		"new_status", event.NewStatus,
	)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher drops all events. Used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishStatusChange(ctx context.Context, eventType string, event StatusChangeEvent) {
}

func (noopPublisher) Close() error { return nil }
