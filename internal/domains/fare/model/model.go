package model

const (
	BookingTypeLocal      = "Local"
	BookingTypeOutstation = "Outstation"
	BookingTypePackage    = "Package"
)

const (
	// DailyCharge is added per day on outstation trips.
	DailyCharge = 500

	DefaultLocalRate      = 20
	DefaultOutstationRate = 11
)

// Breakdown is the full fare computation returned to the caller. Only
// TotalFare is persisted with the booking.
type Breakdown struct {
	Distance     float64 `json:"distance"`
	PricePerKm   float64 `json:"pricePerKm"`
	NumberOfDays int     `json:"numberOfDays"`
	BaseFare     float64 `json:"baseFare"`
	DailyCharge  float64 `json:"dailyCharge"`
	TotalFare    float64 `json:"totalFare"`
}

// PackageInfo carries the fixed package price plus the per-km charge applied
// beyond the package limit, surfaced in the customer confirmation email.
type PackageInfo struct {
	BasePrice  float64
	ExtraPerKm float64
}

// Pricing holds the agency rate card. Rates are fixed and only change with
// owner approval, so they live in code rather than configuration.
type Pricing struct {
	LocalPerKm      map[string]float64
	OutstationPerKm map[string]float64
	Packages        map[string]PackageInfo
}

func DefaultPricing() Pricing {
	return Pricing{
		LocalPerKm: map[string]float64{
			"Sedan":                   20,
			"Maruti Ertiga AC":        28,
			"Toyota Innova AC":        32,
			"Toyota Innova Crysta AC": 38,
			"Tempo Traveller Non-AC":  58,
			"Tempo Traveller AC":      62,
			"Bus 21+1 AC":             31,
			"Bus 21+1 Non-AC":         28,

			// Legacy fleet names still accepted from older widgets.
			"Toyota Etios AC":  20,
			"Swift Dzire AC":   16,
			"Tempo Traveller":  40,
			"Bus (30+ Seater)": 60,
		},
		OutstationPerKm: map[string]float64{
			"Sedan":                   11,
			"Maruti Ertiga AC":        14,
			"Toyota Innova AC":        16,
			"Toyota Innova Crysta AC": 17,
			"Tempo Traveller Non-AC":  17,
			"Tempo Traveller AC":      19,
			"Bus 21+1 AC":             31,
			"Bus 21+1 Non-AC":         28,
		},
		Packages: map[string]PackageInfo{
			"Sedan":                   {BasePrice: 1995, ExtraPerKm: 18},
			"Maruti Ertiga AC":        {BasePrice: 2495, ExtraPerKm: 18},
			"Toyota Innova AC":        {BasePrice: 2695, ExtraPerKm: 18},
			"Toyota Innova Crysta AC": {BasePrice: 2895, ExtraPerKm: 20},
			"Tempo Traveller Non-AC":  {BasePrice: 3995, ExtraPerKm: 20},
			"Tempo Traveller AC":      {BasePrice: 4495, ExtraPerKm: 20},
		},
	}
}

// PackageInfoFor returns the package entry for a vehicle, reporting whether
// the vehicle has one.
func (p Pricing) PackageInfoFor(vehicle string) (PackageInfo, bool) {
	info, ok := p.Packages[vehicle]

	return info, ok
}
