package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cabwise/internal/domains/booking/model"
	"cabwise/internal/domains/booking/model/dto"
	fareModel "cabwise/internal/domains/fare/model"
	"cabwise/shared"
	"cabwise/shared/constant"
	"cabwise/shared/timezone"
)

const tripTypeRoundTrip = "Round Trip"

var clockRegexp = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*([AaPp][Mm]))?$`)

// travelDateLayouts are tried in order when reconciling the many date
// formats older widget revisions sent.
var travelDateLayouts = []string{
	constant.TravelDateFormat,
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Normalize reconciles a raw widget submission into one canonical booking.
// Running it on an already-normalized record changes nothing.
func (s *serviceImpl) Normalize(ctx context.Context, req dto.SubmitBookingRequest) model.Booking {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Normalize")
	defer scope.End()

	bookingType := normalizeBookingType(req.BookingType)

	var tripType, packageType string

	switch bookingType {
	case fareModel.BookingTypePackage:
		packageType = req.PackageType
	case fareModel.BookingTypeOutstation:
		tripType = req.TripType
		packageType = "N/A"
	}

	rawTravelDate := shared.FirstNonEmpty(req.TravelDate, req.PackageDate, req.OnewayDate, req.StartDate, req.Date)
	travelDate := formatTravelDate(rawTravelDate)

	returnDate := constant.Empty
	if bookingType == fareModel.BookingTypeOutstation && tripType == tripTypeRoundTrip {
		returnDate = req.ReturnDate
	}

	travelTime := resolveTravelTime(req)

	id := req.ID
	if id == constant.Empty {
		id = fmt.Sprintf("BK%d", timezone.Now().UnixMilli())
	}

	timestamp := timezone.Now()
	if req.Timestamp != constant.Empty {
		if parsed, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = timezone.ToAppTime(parsed)
		}
	}

	email := req.Email

	return model.Booking{
		ID:           id,
		Timestamp:    timestamp,
		EmailAddress: email,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        email,
		Message:      req.Message,
		BookingType:  bookingType,
		TripType:     tripType,
		Vehicle:      shared.FirstNonEmpty(req.Vehicle, req.SelectedVehicle),
		Pickup:       shared.FirstNonEmpty(req.Pickup, req.PickupLocation, req.PackagePickup),
		Drop:         shared.FirstNonEmpty(req.Drop, req.DropLocation),
		TravelDate:   travelDate,
		TravelTime:   travelTime,
		PackageType:  packageType,
		ReturnDate:   returnDate,
	}
}

func normalizeBookingType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "outstation":
		return fareModel.BookingTypeOutstation
	case "package":
		return fareModel.BookingTypePackage
	default:
		return fareModel.BookingTypeLocal
	}
}

// formatTravelDate reformats to YYYY-MM-DD, preserving the raw value when no
// known layout matches.
func formatTravelDate(raw string) string {
	if raw == constant.Empty {
		return constant.Empty
	}

	for _, layout := range travelDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(constant.TravelDateFormat)
		}
	}

	return raw
}

// resolveTravelTime walks the explicit time aliases, then synthesizes from
// the 12-hour selector triples, then falls back to the oldest aliases.
func resolveTravelTime(req dto.SubmitBookingRequest) string {
	raw := shared.FirstNonEmpty(req.Time, req.TravelTime, req.PackageTime, req.OnewayTime, req.RoundtripTime)

	if raw == constant.Empty {
		raw = shared.FirstNonEmpty(
			synthesizeClock(req.Hour, req.Minute, req.Period),
			synthesizeClock(req.PackageHour, req.PackageMinute, req.PackagePeriod),
			synthesizeClock(req.OnewayHour, req.OnewayMinute, req.OnewayPeriod),
			synthesizeClock(req.RoundtripHour, req.RoundtripMinute, req.RoundtripPeriod),
		)
	}

	formatted := formatClock(raw)

	return shared.FirstNonEmpty(formatted, req.PickupTime, req.TravelTimeSnake, req.PackageTimeSnake)
}

// synthesizeClock builds a 24h HH:MM from a 12-hour (hour, minute, period)
// selector triple; all three parts must be present.
func synthesizeClock(hour, minute, period string) string {
	if hour == constant.Empty || minute == constant.Empty || period == constant.Empty {
		return constant.Empty
	}

	h, err := strconv.Atoi(hour)
	if err != nil {
		return constant.Empty
	}

	h = to24Hour(h, period)

	if len(minute) == 1 {
		minute = "0" + minute
	}

	return fmt.Sprintf("%02d:%s", h, minute)
}

// formatClock canonicalizes a clock string to 24h HH:MM, returning empty
// when the value is unrecognizable.
func formatClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == constant.Empty {
		return constant.Empty
	}

	m := clockRegexp.FindStringSubmatch(raw)
	if m == nil {
		return constant.Empty
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])

	if m[4] != constant.Empty {
		h = to24Hour(h, m[4])
	}

	if h < 0 || h > 23 || min < 0 || min > 59 {
		return constant.Empty
	}

	return fmt.Sprintf("%02d:%02d", h, min)
}

func to24Hour(h int, period string) int {
	switch strings.ToUpper(period) {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}

	return h
}
