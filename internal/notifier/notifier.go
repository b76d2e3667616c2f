package notifier

import (
	"context"

	"cabwise/config"
	"cabwise/infras/kafka"
	"cabwise/infras/mail"
	"cabwise/infras/otel"
	"cabwise/infras/s3"
	bookingModel "cabwise/internal/domains/booking/model"
	fareModel "cabwise/internal/domains/fare/model"
	"cabwise/shared/constant"

	"github.com/rs/zerolog/log"
)

// Event describes a booking that was just persisted.
type Event struct {
	Booking   bookingModel.Booking `json:"booking"`
	Breakdown fareModel.Breakdown  `json:"breakdown"`
}

// Notifier reacts to a persisted booking. Notifiers run post-commit and must
// never affect the submission response.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, event Event) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

type dispatcherImpl struct {
	notifiers []Notifier
	otel      otel.Otel
}

func NewDispatcher(otel otel.Otel, notifiers ...Notifier) Dispatcher {
	return &dispatcherImpl{
		notifiers: notifiers,
		otel:      otel,
	}
}

// NewDefault wires the standard post-commit fan-out: both confirmation
// emails, the booking event stream and the object-store archive.
func NewDefault(
	ot otel.Otel,
	cfg *config.Config,
	mailer mail.Mailer,
	events kafka.Client,
	store s3.S3,
	pricing fareModel.Pricing,
) Dispatcher {
	return NewDispatcher(ot,
		NewOwnerEmail(mailer, cfg, pricing),
		NewCustomerEmail(mailer, cfg, pricing),
		NewBookingEvent(events, cfg),
		NewArchive(store),
	)
}

// Dispatch runs every notifier in turn. Each one gets its own recover
// boundary so a panicking notifier cannot take down the rest.
func (d *dispatcherImpl) Dispatch(ctx context.Context, event Event) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".Dispatch")
	defer scope.End()

	for _, notifier := range d.notifiers {
		d.run(ctx, notifier, event)
	}
}

func (d *dispatcherImpl) run(ctx context.Context, notifier Notifier, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Any("panic", r).
				Str("notifier", notifier.Name()).
				Str("booking_id", event.Booking.ID).
				Msg("notifier panicked")
		}
	}()

	if err := notifier.Notify(ctx, event); err != nil {
		log.Error().Err(err).
			Str("notifier", notifier.Name()).
			Str("booking_id", event.Booking.ID).
			Msg("notifier failed")
	}
}
