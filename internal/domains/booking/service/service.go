package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"

	"cabwise/config"
	"cabwise/infras/otel"
	"cabwise/internal/domains/booking/model"
	"cabwise/internal/domains/booking/model/dto"
	"cabwise/internal/domains/booking/repository"
	distanceService "cabwise/internal/domains/distance/service"
	fareModel "cabwise/internal/domains/fare/model"
	fareService "cabwise/internal/domains/fare/service"
	"cabwise/internal/notifier"
	"cabwise/shared"
	"cabwise/shared/cache"
	"cabwise/shared/constant"
	gDto "cabwise/shared/dto"
	"cabwise/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBookings = "booking:gets"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	Normalize(ctx context.Context, req dto.SubmitBookingRequest) model.Booking
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type serviceImpl struct {
	repo       repository.Booking
	fare       fareService.Fare
	distance   distanceService.Distance
	dispatcher notifier.Dispatcher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	fare fareService.Fare,
	distance distanceService.Distance,
	dispatcher notifier.Dispatcher,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		fare:       fare,
		distance:   distance,
		dispatcher: dispatcher,
		cfg:        cfg,
		cache:      redisCache,
		otel:       otel,
	}
}

// Submit runs the full intake pipeline: normalize, price, dedup, persist,
// notify. Duplicates are absorbed silently so retrying widgets never see an
// error for a booking that already landed.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := s.Normalize(ctx, req)

	if booking.Vehicle == constant.Empty {
		return res, failure.BadRequestFromString("vehicle is required") //nolint:wrapcheck
	}

	breakdown := s.price(ctx, booking)

	booking.TripFare = sql.NullFloat64{Float64: breakdown.TotalFare, Valid: true}

	if s.isDuplicate(ctx, booking) {
		res.FromBreakdown(breakdown)

		return res, nil
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to save booking")

		return res, fmt.Errorf("failed to save booking: %w", err)
	}

	go s.dispatcher.Dispatch(context.WithoutCancel(ctx), notifier.Event{
		Booking:   booking,
		Breakdown: breakdown,
	})

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBookings)

	res.FromBreakdown(breakdown)

	return res, nil
}

// price computes the fare. Package bookings skip distance resolution and use
// the fixed package price; everything else walks the distance fallback chain
// first. Pricing never fails the submission.
func (s *serviceImpl) price(ctx context.Context, booking model.Booking) fareModel.Breakdown {
	if booking.BookingType == fareModel.BookingTypePackage {
		return s.fare.Calculate(ctx, 0, booking.Vehicle, 1, booking.BookingType)
	}

	result := s.distance.Resolve(ctx, booking.Pickup, booking.Drop)
	days := s.fare.NumberOfDays(booking.TravelDate, booking.ReturnDate)

	return s.fare.Calculate(ctx, result.DistanceKm, booking.Vehicle, days, booking.BookingType)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

// ExportCSV streams every booking in the exact legacy spreadsheet layout,
// header row included.
func (s *serviceImpl) ExportCSV(ctx context.Context, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldTimestamp,
		SortDir: "ASC",
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for export")

		return fmt.Errorf("failed to get bookings for export: %w", err)
	}

	writer := csv.NewWriter(w)

	if err = writer.Write(model.SheetHeader()); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, mod := range models {
		if err = writer.Write(mod.SheetRow()); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()

	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}
