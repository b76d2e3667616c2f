package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cabwise/infras/otel/mocks"
	"cabwise/internal/domains/fare/model"
	"cabwise/internal/domains/fare/service"
)

func TestFareService_Calculate(t *testing.T) {
	mockOtel := mocks.NewOtel()
	svc := service.New(model.DefaultPricing(), mockOtel)

	tests := []struct {
		name        string
		distanceKm  float64
		vehicle     string
		days        int
		bookingType string
		want        model.Breakdown
	}{
		{
			name:        "local sedan",
			distanceKm:  10,
			vehicle:     "Sedan",
			days:        1,
			bookingType: "Local",
			want: model.Breakdown{
				Distance:     10,
				PricePerKm:   20,
				NumberOfDays: 1,
				BaseFare:     200,
				DailyCharge:  0,
				TotalFare:    200,
			},
		},
		{
			name:        "local forces single day",
			distanceKm:  10,
			vehicle:     "Sedan",
			days:        3,
			bookingType: "local",
			want: model.Breakdown{
				Distance:     10,
				PricePerKm:   20,
				NumberOfDays: 1,
				BaseFare:     200,
				DailyCharge:  0,
				TotalFare:    200,
			},
		},
		{
			name:        "local unknown vehicle falls back to default rate",
			distanceKm:  5,
			vehicle:     "Rickshaw",
			days:        1,
			bookingType: "Local",
			want: model.Breakdown{
				Distance:     5,
				PricePerKm:   20,
				NumberOfDays: 1,
				BaseFare:     100,
				DailyCharge:  0,
				TotalFare:    100,
			},
		},
		{
			name:        "outstation sedan two days",
			distanceKm:  100,
			vehicle:     "Sedan",
			days:        2,
			bookingType: "Outstation",
			want: model.Breakdown{
				Distance:     100,
				PricePerKm:   11,
				NumberOfDays: 2,
				BaseFare:     1100,
				DailyCharge:  1000,
				TotalFare:    2100,
			},
		},
		{
			name:        "outstation unknown vehicle falls back to default rate",
			distanceKm:  50,
			vehicle:     "Rickshaw",
			days:        1,
			bookingType: "OUTSTATION",
			want: model.Breakdown{
				Distance:     50,
				PricePerKm:   11,
				NumberOfDays: 1,
				BaseFare:     550,
				DailyCharge:  500,
				TotalFare:    1050,
			},
		},
		{
			name:        "package fixed price ignores distance and days",
			distanceKm:  37.5,
			vehicle:     "Tempo Traveller AC",
			days:        4,
			bookingType: "Package",
			want: model.Breakdown{
				Distance:     37.5,
				PricePerKm:   0,
				NumberOfDays: 1,
				BaseFare:     4495,
				DailyCharge:  0,
				TotalFare:    4495,
			},
		},
		{
			name:        "package unknown vehicle yields zero fare",
			distanceKm:  10,
			vehicle:     "Rickshaw",
			days:        1,
			bookingType: "package",
			want: model.Breakdown{
				Distance:     10,
				PricePerKm:   0,
				NumberOfDays: 1,
				BaseFare:     0,
				DailyCharge:  0,
				TotalFare:    0,
			},
		},
		{
			name:        "unknown booking type treated as local",
			distanceKm:  10,
			vehicle:     "Swift Dzire AC",
			days:        1,
			bookingType: "weekend",
			want: model.Breakdown{
				Distance:     10,
				PricePerKm:   16,
				NumberOfDays: 1,
				BaseFare:     160,
				DailyCharge:  0,
				TotalFare:    160,
			},
		},
		{
			name:        "fractional distance rounds to two decimals",
			distanceKm:  12.345,
			vehicle:     "Maruti Ertiga AC",
			days:        1,
			bookingType: "Local",
			want: model.Breakdown{
				Distance:     12.345,
				PricePerKm:   28,
				NumberOfDays: 1,
				BaseFare:     345.66,
				DailyCharge:  0,
				TotalFare:    345.66,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Calculate(context.Background(), tt.distanceKm, tt.vehicle, tt.days, tt.bookingType)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFareService_NumberOfDays(t *testing.T) {
	mockOtel := mocks.NewOtel()
	svc := service.New(model.DefaultPricing(), mockOtel)

	tests := []struct {
		name       string
		startDate  string
		returnDate string
		want       int
	}{
		{
			name:       "missing both dates",
			startDate:  "",
			returnDate: "",
			want:       1,
		},
		{
			name:       "missing return date",
			startDate:  "2025-01-10",
			returnDate: "",
			want:       1,
		},
		{
			name:       "same day return",
			startDate:  "2025-01-10",
			returnDate: "2025-01-10",
			want:       1,
		},
		{
			name:       "next day return",
			startDate:  "2025-01-10",
			returnDate: "2025-01-11",
			want:       2,
		},
		{
			name:       "three day span",
			startDate:  "2025-01-10",
			returnDate: "2025-01-12",
			want:       3,
		},
		{
			name:       "return before start",
			startDate:  "2025-01-10",
			returnDate: "2025-01-08",
			want:       1,
		},
		{
			name:       "unparseable start date",
			startDate:  "next monday",
			returnDate: "2025-01-12",
			want:       1,
		},
		{
			name:       "unparseable return date",
			startDate:  "2025-01-10",
			returnDate: "someday",
			want:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.NumberOfDays(tt.startDate, tt.returnDate))
		})
	}
}
