package notifier_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cabwise/config"
	kafkaInfra "cabwise/infras/kafka"
	kafkaMocks "cabwise/infras/kafka/mocks"
	mailMocks "cabwise/infras/mail/mocks"
	"cabwise/infras/otel/mocks"
	s3Mocks "cabwise/infras/s3/mocks"
	bookingModel "cabwise/internal/domains/booking/model"
	fareModel "cabwise/internal/domains/fare/model"
	"cabwise/internal/notifier"
)

func sampleEvent() notifier.Event {
	return notifier.Event{
		Booking: bookingModel.Booking{
			ID:          "BK1700000000000",
			Timestamp:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
			Name:        "Asha Rao",
			Phone:       "9876543210",
			Email:       "asha@example.com",
			BookingType: fareModel.BookingTypeLocal,
			Vehicle:     "Sedan",
			Pickup:      "Jayanagar",
			Drop:        "Indiranagar",
			TravelDate:  "2025-03-20",
			TravelTime:  "09:30",
			TripFare:    sql.NullFloat64{Float64: 200, Valid: true},
		},
		Breakdown: fareModel.Breakdown{
			Distance:     10,
			PricePerKm:   20,
			NumberOfDays: 1,
			BaseFare:     200,
			TotalFare:    200,
		},
	}
}

type panicky struct{}

func (panicky) Name() string { return "panicky" }

func (panicky) Notify(context.Context, notifier.Event) error { panic("boom") }

type recording struct {
	called bool
}

func (r *recording) Name() string { return "recording" }

func (r *recording) Notify(context.Context, notifier.Event) error {
	r.called = true

	return nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("a failing notifier does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mailMocks.NewMockMailer(ctrl)
		mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))

		cfg := &config.Config{}
		tail := &recording{}

		dispatcher := notifier.NewDispatcher(mocks.NewOtel(),
			notifier.NewOwnerEmail(mailer, cfg, fareModel.DefaultPricing()),
			tail,
		)

		dispatcher.Dispatch(context.Background(), sampleEvent())

		assert.True(t, tail.called)
	})

	t.Run("a panicking notifier is contained", func(t *testing.T) {
		tail := &recording{}

		dispatcher := notifier.NewDispatcher(mocks.NewOtel(), panicky{}, tail)

		assert.NotPanics(t, func() {
			dispatcher.Dispatch(context.Background(), sampleEvent())
		})
		assert.True(t, tail.called)
	})
}

func TestOwnerEmail_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mailMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.App.Name = "Cabwise"
	cfg.External.SMTP.OwnerEmail = "owner@example.com"

	var body string

	mailer.EXPECT().
		Send(gomock.Any(), "owner@example.com", "Booking Confirmed - Cabwise", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
			body = htmlBody

			return nil
		})

	n := notifier.NewOwnerEmail(mailer, cfg, fareModel.DefaultPricing())

	err := n.Notify(context.Background(), sampleEvent())

	assert.NoError(t, err)
	assert.True(t, strings.Contains(body, "Asha Rao"))
	assert.True(t, strings.Contains(body, "BK1700000000000"))
	assert.True(t, strings.Contains(body, "Fare Details"))
	assert.False(t, strings.Contains(body, "Package Details"))
}

func TestCustomerEmail_Notify(t *testing.T) {
	t.Run("sends to the customer address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mailMocks.NewMockMailer(ctrl)

		cfg := &config.Config{}
		cfg.App.Name = "Cabwise"

		mailer.EXPECT().
			Send(gomock.Any(), "asha@example.com", "Your Booking - Cabwise", gomock.Any()).
			Return(nil)

		n := notifier.NewCustomerEmail(mailer, cfg, fareModel.DefaultPricing())

		assert.NoError(t, n.Notify(context.Background(), sampleEvent()))
	})

	t.Run("skips bookings without an email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mailMocks.NewMockMailer(ctrl)

		event := sampleEvent()
		event.Booking.Email = ""

		n := notifier.NewCustomerEmail(mailer, &config.Config{}, fareModel.DefaultPricing())

		assert.NoError(t, n.Notify(context.Background(), event))
	})

	t.Run("package booking renders package details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mailMocks.NewMockMailer(ctrl)

		event := sampleEvent()
		event.Booking.BookingType = fareModel.BookingTypePackage
		event.Booking.Vehicle = "Tempo Traveller AC"
		event.Breakdown = fareModel.Breakdown{NumberOfDays: 1, BaseFare: 4495, TotalFare: 4495}

		var body string

		mailer.EXPECT().
			Send(gomock.Any(), "asha@example.com", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
				body = htmlBody

				return nil
			})

		n := notifier.NewCustomerEmail(mailer, &config.Config{}, fareModel.DefaultPricing())

		assert.NoError(t, n.Notify(context.Background(), event))
		assert.True(t, strings.Contains(body, "Package Details"))
		assert.True(t, strings.Contains(body, "4495"))
		assert.False(t, strings.Contains(body, "Fare Details"))
	})
}

func TestBookingEvent_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.External.Kafka.BookingTopic = "bookings.created"

	event := sampleEvent()

	client.EXPECT().
		SendMessages(gomock.Any(), "bookings.created", kafkaInfra.Message{
			Key:   event.Booking.ID,
			Value: event,
		}).
		Return(nil)

	n := notifier.NewBookingEvent(client, cfg)

	assert.NoError(t, n.Notify(context.Background(), event))
}

func TestArchive_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := s3Mocks.NewMockS3(ctrl)

	event := sampleEvent()

	store.EXPECT().
		UploadJSON(gomock.Any(), "bookings", "BK1700000000000.json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, payload []byte) (string, error) {
			var snapshot notifier.Event
			assert.NoError(t, json.Unmarshal(payload, &snapshot))
			assert.Equal(t, event.Booking.ID, snapshot.Booking.ID)

			return "https://cdn.example.com/bookings/BK1700000000000.json", nil
		})

	n := notifier.NewArchive(store)

	assert.NoError(t, n.Notify(context.Background(), event))
}
