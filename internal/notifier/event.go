package notifier

import (
	"context"

	"cabwise/config"
	"cabwise/infras/kafka"
)

type bookingEventNotifier struct {
	client kafka.Client
	cfg    *config.Config
}

// NewBookingEvent publishes a booking-created event for downstream
// consumers (analytics, CRM sync).
func NewBookingEvent(client kafka.Client, cfg *config.Config) Notifier {
	return &bookingEventNotifier{
		client: client,
		cfg:    cfg,
	}
}

func (n *bookingEventNotifier) Name() string {
	return "booking-event"
}

func (n *bookingEventNotifier) Notify(ctx context.Context, event Event) error {
	message := kafka.Message{
		Key:   event.Booking.ID,
		Value: event,
	}

	return n.client.SendMessages(ctx, n.cfg.External.Kafka.BookingTopic, message) //nolint:wrapcheck
}
