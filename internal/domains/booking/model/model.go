package model

import (
	"database/sql"
	"strconv"
	"time"

	"cabwise/shared/constant"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldTimestamp    = "ts"
	FieldEmailAddress = "email_address"
	FieldName         = "name"
	FieldPhone        = "phone_number"
	FieldEmail        = "email"
	FieldMessage      = "message"
	FieldBookingType  = "booking_type"
	FieldTripType     = "trip_type"
	FieldVehicle      = "vehicle_preference"
	FieldPickup       = "pickup_location"
	FieldDrop         = "drop_location"
	FieldTravelDate   = "travel_date"
	FieldTravelTime   = "travel_time"
	FieldPackageType  = "package_type"
	FieldReturnDate   = "return_date"
	FieldTripFare     = "trip_fare"
)

// Booking is one persisted row. Columns mirror the agency's legacy
// spreadsheet ordering, with an added primary-key id.
type Booking struct {
	ID           string          `db:"id"`
	Timestamp    time.Time       `db:"ts"`
	EmailAddress string          `db:"email_address"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone_number"`
	Email        string          `db:"email"`
	Message      string          `db:"message"`
	BookingType  string          `db:"booking_type"`
	TripType     string          `db:"trip_type"`
	Vehicle      string          `db:"vehicle_preference"`
	Pickup       string          `db:"pickup_location"`
	Drop         string          `db:"drop_location"`
	TravelDate   string          `db:"travel_date"`
	TravelTime   string          `db:"travel_time"`
	PackageType  string          `db:"package_type"`
	ReturnDate   string          `db:"return_date"`
	TripFare     sql.NullFloat64 `db:"trip_fare"`
}

// SheetHeader is the exact 16-column header of the legacy spreadsheet. The
// CSV export must reproduce it verbatim.
func SheetHeader() []string {
	return []string{
		"Timestamp",
		"Email Address",
		"Name",
		"Phone Number",
		"Email",
		"Message / Special Requirement",
		"Booking Type",
		"Trip Type",
		"Vehicle Preference",
		"Pickup Location",
		"Drop Location",
		"Travel Date",
		"Travel Time",
		"Package Type",
		"Return Date",
		"Trip Fare",
	}
}

// SheetRow renders the booking in spreadsheet column order.
func (b Booking) SheetRow() []string {
	fare := constant.Empty
	if b.TripFare.Valid {
		fare = strconv.FormatFloat(b.TripFare.Float64, 'f', -1, 64)
	}

	return []string{
		b.Timestamp.Format(constant.DateFormat),
		b.EmailAddress,
		b.Name,
		b.Phone,
		b.Email,
		b.Message,
		b.BookingType,
		b.TripType,
		b.Vehicle,
		b.Pickup,
		b.Drop,
		b.TravelDate,
		b.TravelTime,
		b.PackageType,
		b.ReturnDate,
		fare,
	}
}
