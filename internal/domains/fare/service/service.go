package service

import (
	"context"
	"math"
	"strings"
	"time"

	"cabwise/infras/otel"
	"cabwise/internal/domains/fare/model"
	"cabwise/shared"
	"cabwise/shared/constant"
)

type Fare interface {
	Calculate(ctx context.Context, distanceKm float64, vehicle string, numberOfDays int, bookingType string) model.Breakdown
	NumberOfDays(startDate, returnDate string) int
	Pricing() model.Pricing
}

type serviceImpl struct {
	pricing model.Pricing
	otel    otel.Otel
}

func New(pricing model.Pricing, otel otel.Otel) Fare {
	return &serviceImpl{
		pricing: pricing,
		otel:    otel,
	}
}

func (s *serviceImpl) Pricing() model.Pricing {
	return s.pricing
}

func (s *serviceImpl) Calculate(ctx context.Context, distanceKm float64, vehicle string, numberOfDays int, bookingType string) model.Breakdown {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".fare.Calculate")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"vehicle":      vehicle,
		"booking_type": bookingType,
	})

	if numberOfDays < 1 {
		numberOfDays = 1
	}

	switch strings.ToLower(strings.TrimSpace(bookingType)) {
	case strings.ToLower(model.BookingTypeOutstation):
		return s.calculateOutstation(distanceKm, vehicle, numberOfDays)
	case strings.ToLower(model.BookingTypePackage):
		return s.calculatePackage(distanceKm, vehicle)
	default:
		return s.calculateLocal(distanceKm, vehicle)
	}
}

func (s *serviceImpl) calculateLocal(distanceKm float64, vehicle string) model.Breakdown {
	rate, ok := s.pricing.LocalPerKm[vehicle]
	if !ok {
		rate = model.DefaultLocalRate
	}

	baseFare := shared.RoundMoney(distanceKm * rate)

	return model.Breakdown{
		Distance:     distanceKm,
		PricePerKm:   rate,
		NumberOfDays: 1,
		BaseFare:     baseFare,
		DailyCharge:  0,
		TotalFare:    baseFare,
	}
}

func (s *serviceImpl) calculateOutstation(distanceKm float64, vehicle string, numberOfDays int) model.Breakdown {
	rate, ok := s.pricing.OutstationPerKm[vehicle]
	if !ok {
		rate = model.DefaultOutstationRate
	}

	baseFare := distanceKm * rate
	dailyCharge := float64(model.DailyCharge * numberOfDays)

	return model.Breakdown{
		Distance:     distanceKm,
		PricePerKm:   rate,
		NumberOfDays: numberOfDays,
		BaseFare:     shared.RoundMoney(baseFare),
		DailyCharge:  dailyCharge,
		TotalFare:    shared.RoundMoney(baseFare + dailyCharge),
	}
}

func (s *serviceImpl) calculatePackage(distanceKm float64, vehicle string) model.Breakdown {
	var fixed float64
	if info, ok := s.pricing.PackageInfoFor(vehicle); ok {
		fixed = info.BasePrice
	}

	return model.Breakdown{
		Distance:     distanceKm,
		PricePerKm:   0,
		NumberOfDays: 1,
		BaseFare:     fixed,
		DailyCharge:  0,
		TotalFare:    fixed,
	}
}

// NumberOfDays counts the inclusive day span of a trip. A one-way trip or an
// unparseable date resolves to a single day.
func (s *serviceImpl) NumberOfDays(startDate, returnDate string) int {
	if startDate == constant.Empty || returnDate == constant.Empty {
		return 1
	}

	start, err := time.Parse(constant.TravelDateFormat, startDate)
	if err != nil {
		return 1
	}

	end, err := time.Parse(constant.TravelDateFormat, returnDate)
	if err != nil {
		return 1
	}

	diff := end.Sub(start)
	if diff <= 0 {
		return 1
	}

	days := int(math.Ceil(diff.Hours()/24)) + 1

	return days
}
