package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"cabwise/config"
	"cabwise/infras/mail"
	fareModel "cabwise/internal/domains/fare/model"
	"cabwise/shared/constant"
	"cabwise/shared/timezone"
)

const bookingEmailTemplate = `<div style="font-family:Inter,Segoe UI,Arial;padding:16px;border-left:4px solid #22c55e;background:#f8fafc">
<h2 style="margin:0 0 4px;color:#111827">{{.Name}}</h2>
<div style="font-size:12px;color:#6b7280">Booking ID: {{.ID}} &bull; {{.SentAt}}</div>
<div style="margin-top:12px;display:flex;gap:24px;font-size:14px;color:#374151">
<div><div><b>Service:</b> {{.Service}}</div><div><b>Vehicle:</b> {{.Vehicle}}</div></div>
<div><div><b>Pickup:</b> {{.Pickup}}</div><div><b>Drop:</b> {{.Drop}}</div><div><b>Date:</b> {{.TravelDate}}</div><div><b>Time:</b> {{.TravelTime}}</div></div>
</div>
<hr style="margin:16px 0;border:none;border-top:1px solid #e5e7eb" />
<div style="font-size:14px;color:#374151"><div><b>Phone:</b> {{.Phone}}</div><div><b>Email:</b> {{.Email}}</div></div>
{{if .IsPackage}}<div style="margin-top:16px;padding:12px;background:#eef2ff;border-radius:8px;border-left:4px solid #4f46e5">
<h3 style="margin:0 0 8px;color:#3730a3;font-size:16px">Package Details</h3>
<div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;font-size:14px;color:#374151">
<div><b>Vehicle:</b> {{.Vehicle}}</div>
{{if .HasPackageInfo}}<div><b>Package Price:</b> &#8377;{{.PackagePrice}}</div>
<div><b>Extra Charges:</b> &#8377;{{.ExtraPerKm}}/km beyond package limit</div>{{end}}
{{if .PackageType}}<div><b>Package Type:</b> {{.PackageType}}</div>{{end}}
</div></div>
{{else if .HasFare}}<div style="margin-top:16px;padding:12px;background:#f0fdf4;border-radius:8px;border-left:4px solid #22c55e">
<h3 style="margin:0 0 8px;color:#166534;font-size:16px">Fare Details</h3>
<div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;font-size:14px;color:#374151">
<div><b>Distance:</b> {{.Distance}} km</div>
<div><b>Price/km:</b> &#8377;{{.PricePerKm}}</div>
<div><b>Days:</b> {{.NumberOfDays}}</div>
<div><b>Base Fare:</b> &#8377;{{.BaseFare}}</div>
<div><b>Daily Charge:</b> &#8377;{{.DailyCharge}}</div>
<div style="font-weight:bold;font-size:16px;color:#166534"><b>Total Fare:</b> &#8377;{{.TotalFare}}</div>
</div></div>
{{end}}</div>`

var emailTmpl = template.Must(template.New("booking").Parse(bookingEmailTemplate))

type emailData struct {
	ID             string
	SentAt         string
	Name           string
	Phone          string
	Email          string
	Service        string
	Vehicle        string
	Pickup         string
	Drop           string
	TravelDate     string
	TravelTime     string
	IsPackage      bool
	HasPackageInfo bool
	PackagePrice   float64
	ExtraPerKm     float64
	PackageType    string
	HasFare        bool
	Distance       float64
	PricePerKm     float64
	NumberOfDays   int
	BaseFare       float64
	DailyCharge    float64
	TotalFare      float64
}

func buildEmailBody(event Event, pricing fareModel.Pricing) (string, error) {
	booking := event.Booking
	breakdown := event.Breakdown

	data := emailData{
		ID:           booking.ID,
		SentAt:       timezone.Now().Format("02 Jan 2006 15:04"),
		Name:         booking.Name,
		Phone:        booking.Phone,
		Email:        booking.Email,
		Service:      strings.ToLower(booking.BookingType),
		Vehicle:      booking.Vehicle,
		Pickup:       booking.Pickup,
		Drop:         booking.Drop,
		TravelDate:   booking.TravelDate,
		TravelTime:   booking.TravelTime,
		IsPackage:    booking.BookingType == fareModel.BookingTypePackage,
		PackageType:  booking.PackageType,
		HasFare:      breakdown.TotalFare != 0,
		Distance:     breakdown.Distance,
		PricePerKm:   breakdown.PricePerKm,
		NumberOfDays: breakdown.NumberOfDays,
		BaseFare:     breakdown.BaseFare,
		DailyCharge:  breakdown.DailyCharge,
		TotalFare:    breakdown.TotalFare,
	}

	if data.IsPackage {
		if info, ok := pricing.PackageInfoFor(booking.Vehicle); ok {
			data.HasPackageInfo = true
			data.PackagePrice = info.BasePrice
			data.ExtraPerKm = info.ExtraPerKm
		}
	}

	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		return constant.Empty, fmt.Errorf("failed to render booking email: %w", err)
	}

	return buf.String(), nil
}

type ownerEmailNotifier struct {
	mailer  mail.Mailer
	cfg     *config.Config
	pricing fareModel.Pricing
}

// NewOwnerEmail notifies the agency owner about every persisted booking.
func NewOwnerEmail(mailer mail.Mailer, cfg *config.Config, pricing fareModel.Pricing) Notifier {
	return &ownerEmailNotifier{
		mailer:  mailer,
		cfg:     cfg,
		pricing: pricing,
	}
}

func (n *ownerEmailNotifier) Name() string {
	return "owner-email"
}

func (n *ownerEmailNotifier) Notify(ctx context.Context, event Event) error {
	body, err := buildEmailBody(event, n.pricing)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking Confirmed - %s", n.cfg.App.Name)

	return n.mailer.Send(ctx, n.cfg.External.SMTP.OwnerEmail, subject, body) //nolint:wrapcheck
}

type customerEmailNotifier struct {
	mailer  mail.Mailer
	cfg     *config.Config
	pricing fareModel.Pricing
}

// NewCustomerEmail sends the confirmation to the customer when the booking
// carries an email address.
func NewCustomerEmail(mailer mail.Mailer, cfg *config.Config, pricing fareModel.Pricing) Notifier {
	return &customerEmailNotifier{
		mailer:  mailer,
		cfg:     cfg,
		pricing: pricing,
	}
}

func (n *customerEmailNotifier) Name() string {
	return "customer-email"
}

func (n *customerEmailNotifier) Notify(ctx context.Context, event Event) error {
	if event.Booking.Email == constant.Empty {
		return nil
	}

	body, err := buildEmailBody(event, n.pricing)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your Booking - %s", n.cfg.App.Name)

	return n.mailer.Send(ctx, event.Booking.Email, subject, body) //nolint:wrapcheck
}
