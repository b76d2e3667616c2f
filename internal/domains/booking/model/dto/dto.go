package dto

import (
	"cabwise/internal/domains/booking/model"
	fareModel "cabwise/internal/domains/fare/model"
	"cabwise/shared"
	"cabwise/shared/constant"
)

// SubmitBookingRequest carries a raw widget submission. The booking widget
// went through several form revisions, so most fields arrive under one of
// several aliases that the normalizer reconciles.
type SubmitBookingRequest struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`

	Name    string `json:"name"    validate:"required,min=2"`
	Phone   string `json:"phone"   validate:"required,phone"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Message string `json:"message"`

	BookingType string `json:"bookingType"`
	TripType    string `json:"tripType"`
	PackageType string `json:"packageType"`

	Vehicle         string `json:"vehicle"`
	SelectedVehicle string `json:"selectedVehicle"`

	Pickup         string `json:"pickup"`
	PickupLocation string `json:"pickupLocation"`
	PackagePickup  string `json:"packagePickup"`
	Drop           string `json:"drop"`
	DropLocation   string `json:"dropLocation"`

	TravelDate  string `json:"travelDate"`
	PackageDate string `json:"packageDate"`
	OnewayDate  string `json:"onewayDate"`
	StartDate   string `json:"startDate"`
	Date        string `json:"date"`
	ReturnDate  string `json:"returnDate"`

	Time          string `json:"time"`
	TravelTime    string `json:"travelTime"`
	PackageTime   string `json:"packageTime"`
	OnewayTime    string `json:"onewayTime"`
	RoundtripTime string `json:"roundtripTime"`

	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Period string `json:"period"`

	PackageHour   string `json:"packageHour"`
	PackageMinute string `json:"packageMinute"`
	PackagePeriod string `json:"packagePeriod"`

	OnewayHour   string `json:"onewayHour"`
	OnewayMinute string `json:"onewayMinute"`
	OnewayPeriod string `json:"onewayPeriod"`

	RoundtripHour   string `json:"roundtripHour"`
	RoundtripMinute string `json:"roundtripMinute"`
	RoundtripPeriod string `json:"roundtripPeriod"`

	// Last-resort time aliases from the oldest widget revision.
	PickupTime      string `json:"pickupTime"`
	TravelTimeSnake string `json:"travel_time"`
	PackageTimeSnake string `json:"package_time"`
}

// SubmitBookingResponse is the legacy widget envelope. Absent or zero fare
// figures are emitted as JSON null, matching what the widget expects.
type SubmitBookingResponse struct {
	OK             bool     `json:"ok"`
	Message        string   `json:"message"`
	FareCalculated bool     `json:"fareCalculated"`
	TotalFare      *float64 `json:"totalFare"`
	Distance       *float64 `json:"distance"`
	PricePerKm     *float64 `json:"pricePerKm"`
	NumberOfDays   *int     `json:"numberOfDays"`
	BaseFare       *float64 `json:"baseFare"`
	DailyCharge    *float64 `json:"dailyCharge"`
}

func (r *SubmitBookingResponse) FromBreakdown(breakdown fareModel.Breakdown) {
	r.OK = true
	r.Message = "Saved"
	r.FareCalculated = breakdown.TotalFare != 0
	r.TotalFare = nonZeroFloat(breakdown.TotalFare)
	r.Distance = nonZeroFloat(breakdown.Distance)
	r.PricePerKm = nonZeroFloat(breakdown.PricePerKm)
	r.NumberOfDays = nonZeroInt(breakdown.NumberOfDays)
	r.BaseFare = nonZeroFloat(breakdown.BaseFare)
	r.DailyCharge = nonZeroFloat(breakdown.DailyCharge)
}

func nonZeroFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}

	return &v
}

func nonZeroInt(v int) *int {
	if v == 0 {
		return nil
	}

	return &v
}

type BookingResponse struct {
	ID          string   `json:"id"`
	Timestamp   string   `json:"timestamp"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Message     string   `json:"message"`
	BookingType string   `json:"booking_type"`
	TripType    string   `json:"trip_type"`
	Vehicle     string   `json:"vehicle"`
	Pickup      string   `json:"pickup"`
	Drop        string   `json:"drop"`
	TravelDate  string   `json:"travel_date"`
	TravelTime  string   `json:"travel_time"`
	PackageType string   `json:"package_type"`
	ReturnDate  string   `json:"return_date"`
	TripFare    *float64 `json:"trip_fare"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Timestamp = mod.Timestamp.Format(constant.DateFormat)
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Message = mod.Message
	r.BookingType = mod.BookingType
	r.TripType = mod.TripType
	r.Vehicle = mod.Vehicle
	r.Pickup = mod.Pickup
	r.Drop = mod.Drop
	r.TravelDate = mod.TravelDate
	r.TravelTime = mod.TravelTime
	r.PackageType = mod.PackageType
	r.ReturnDate = mod.ReturnDate

	if mod.TripFare.Valid {
		fare := mod.TripFare.Float64
		r.TripFare = &fare
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
