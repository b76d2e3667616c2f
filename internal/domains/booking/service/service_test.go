package service_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cabwise/internal/domains/booking/model"
	"cabwise/internal/domains/booking/model/dto"
	distanceModel "cabwise/internal/domains/distance/model"
	"cabwise/shared/cache"
	gDto "cabwise/shared/dto"
	"cabwise/shared/failure"
	"cabwise/shared/timezone"
)

func submission() dto.SubmitBookingRequest {
	return dto.SubmitBookingRequest{
		Name:        "Asha",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		BookingType: "Local",
		Vehicle:     "Sedan",
		Pickup:      "Basavanagudi",
		Drop:        "Indiranagar",
		TravelDate:  "2025-01-15",
		Time:        "09:30",
	}
}

func TestBookingService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("local booking resolves distance and persists fare", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), "Basavanagudi", "Indiranagar").
			Return(distanceModel.Result{OK: true, DistanceKm: 10, Source: distanceModel.SourceDistanceMatrix})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, "Local", booking.BookingType)
				assert.True(t, booking.TripFare.Valid)
				assert.Equal(t, float64(200), booking.TripFare.Float64)

				return nil
			})

		f.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		res, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, "Saved", res.Message)
		assert.True(t, res.FareCalculated)
		assert.Equal(t, float64(200), *res.TotalFare)
		assert.Equal(t, float64(10), *res.Distance)
		assert.Equal(t, float64(20), *res.PricePerKm)
		assert.Equal(t, 1, *res.NumberOfDays)
		assert.Nil(t, res.DailyCharge)
	})

	t.Run("package booking skips distance resolution", func(t *testing.T) {
		f := newFixture(t)

		req := submission()
		req.BookingType = "Package"
		req.PackageType = "8hr/80km"
		req.Vehicle = "Tempo Traveller AC"

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		res, err := f.svc.Submit(ctx, req)

		assert.NoError(t, err)
		assert.True(t, res.OK)
		assert.Equal(t, float64(4495), *res.TotalFare)
		assert.Nil(t, res.Distance)
		assert.Nil(t, res.PricePerKm)
	})

	t.Run("missing vehicle is rejected", func(t *testing.T) {
		f := newFixture(t)

		req := submission()
		req.Vehicle = ""

		_, err := f.svc.Submit(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate via fingerprint cache is absorbed silently", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(false, nil)

		res, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("duplicate via recent rows within window is absorbed silently", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return([]model.Booking{
				{
					Timestamp:   timezone.Now().Add(-time.Minute),
					Email:       "Asha@example.com ",
					Name:        "asha",
					Phone:       "9876543210",
					BookingType: "local",
					Vehicle:     "sedan",
					Pickup:      "basavanagudi",
					Drop:        "Indiranagar",
					TravelDate:  "2025-01-15",
				},
			}, nil)

		res, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("matching row outside the window is not a duplicate", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return([]model.Booking{
				{
					Timestamp:   timezone.Now().Add(-10 * time.Minute),
					Email:       "asha@example.com",
					Name:        "asha",
					Phone:       "9876543210",
					BookingType: "local",
					Vehicle:     "sedan",
					Pickup:      "basavanagudi",
					Drop:        "indiranagar",
					TravelDate:  "2025-01-15",
				},
			}, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		res, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("matching row with zero timestamp is a duplicate", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return([]model.Booking{
				{
					Email:       "asha@example.com",
					Name:        "asha",
					Phone:       "9876543210",
					BookingType: "local",
					Vehicle:     "sedan",
					Pickup:      "basavanagudi",
					Drop:        "indiranagar",
					TravelDate:  "2025-01-15",
				},
			}, nil)

		res, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
		assert.True(t, res.OK)
	})

	t.Run("recent scan failure fails open", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, errors.New("connection reset"))

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		_, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
	})

	t.Run("cache failure falls through to the row scan", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(false, errors.New("redis down"))

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		f.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		_, err := f.svc.Submit(ctx, submission())

		assert.NoError(t, err)
	})

	t.Run("persistence failure is returned", func(t *testing.T) {
		f := newFixture(t)

		f.distance.EXPECT().
			Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(distanceModel.Result{DistanceKm: 10, Source: distanceModel.SourceDefault})

		f.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)

		f.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))

		_, err := f.svc.Submit(ctx, submission())

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctx := context.Background()
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss queries the database and caches the page", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{
					ID:          "BK1",
					Timestamp:   timezone.Now(),
					Name:        "Asha",
					BookingType: "Local",
					TripFare:    sql.NullFloat64{Float64: 200, Valid: true},
				},
			}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.GetAll(ctx, params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "BK1", res.Bookings[0].ID)
		assert.Equal(t, float64(200), *res.Bookings[0].TripFare)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetBookingsResponse)
				assert.True(t, ok)

				res.TotalData = 1
				res.Bookings = []dto.BookingResponse{{ID: "BK1"}}

				return nil
			})

		res, err := f.svc.GetAll(ctx, params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "BK1", res.Bookings[0].ID)
	})

	t.Run("cache save failure does not fail the listing", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		res, err := f.svc.GetAll(ctx, params, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
	})
}

func TestBookingService_ExportCSV(t *testing.T) {
	f := newFixture(t)

	ts := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{
				ID:           "BK1",
				Timestamp:    ts,
				Email:        "asha@example.com",
				EmailAddress: "asha@example.com",
				Name:         "Asha",
				Phone:        "9876543210",
				BookingType:  "Local",
				Vehicle:      "Sedan",
				Pickup:       "Basavanagudi",
				Drop:         "Indiranagar",
				TravelDate:   "2025-01-15",
				TravelTime:   "09:30",
				TripFare:     sql.NullFloat64{Float64: 200, Valid: true},
			},
		}, nil)

	var buf bytes.Buffer

	err := f.svc.ExportCSV(context.Background(), &buf)

	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t,
		"Timestamp,Email Address,Name,Phone Number,Email,Message / Special Requirement,Booking Type,Trip Type,Vehicle Preference,Pickup Location,Drop Location,Travel Date,Travel Time,Package Type,Return Date,Trip Fare",
		lines[0])
	assert.Contains(t, lines[1], "Asha")
	assert.Contains(t, lines[1], "200")
}