package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabwise/infras/otel/mocks"
	"cabwise/infras/postgres"
	"cabwise/internal/domains/booking/model"
	"cabwise/internal/domains/booking/repository"
	gDto "cabwise/shared/dto"
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.New(conn, mocks.NewOtel()), mock
}

func bookingColumns() []string {
	return []string{
		model.FieldID,
		model.FieldTimestamp,
		model.FieldEmailAddress,
		model.FieldName,
		model.FieldPhone,
		model.FieldEmail,
		model.FieldMessage,
		model.FieldBookingType,
		model.FieldTripType,
		model.FieldVehicle,
		model.FieldPickup,
		model.FieldDrop,
		model.FieldTravelDate,
		model.FieldTravelTime,
		model.FieldPackageType,
		model.FieldReturnDate,
		model.FieldTripFare,
	}
}

func addBookingRow(rows *sqlmock.Rows, booking model.Booking) {
	var fare any
	if booking.TripFare.Valid {
		fare = booking.TripFare.Float64
	}

	rows.AddRow(
		booking.ID,
		booking.Timestamp,
		booking.EmailAddress,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.Message,
		booking.BookingType,
		booking.TripType,
		booking.Vehicle,
		booking.Pickup,
		booking.Drop,
		booking.TravelDate,
		booking.TravelTime,
		booking.PackageType,
		booking.ReturnDate,
		fare,
	)
}

func TestBookingRepository_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	booking := model.Booking{
		ID:          "BK1700000000000",
		Timestamp:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Name:        "Asha Rao",
		Phone:       "9876543210",
		BookingType: "Local",
		Vehicle:     "Sedan",
		Pickup:      "Jayanagar",
		Drop:        "Indiranagar",
		TravelDate:  "2025-03-20",
		TravelTime:  "09:30",
		TripFare:    sql.NullFloat64{Float64: 200, Valid: true},
	}

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), booking)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Insert_Error(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(sql.ErrConnDone)

	err := repo.Insert(context.Background(), model.Booking{ID: "BK1"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Recent(t *testing.T) {
	repo, mock := newRepository(t)

	rows := sqlmock.NewRows(bookingColumns())
	addBookingRow(rows, model.Booking{
		ID:          "BK2",
		Timestamp:   time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Name:        "Asha Rao",
		Phone:       "9876543210",
		BookingType: "Local",
		Vehicle:     "Sedan",
	})
	addBookingRow(rows, model.Booking{
		ID:          "BK1",
		Timestamp:   time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Name:        "Ravi Kumar",
		Phone:       "9123456780",
		BookingType: "Outstation",
		Vehicle:     "Toyota Innova AC",
		TripFare:    sql.NullFloat64{Float64: 2100, Valid: true},
	})

	mock.ExpectPrepare("SELECT (.+) FROM bookings ORDER BY ts DESC LIMIT").
		ExpectQuery().
		WillReturnRows(rows)

	bookings, err := repo.Recent(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "BK2", bookings[0].ID)
	assert.Equal(t, "BK1", bookings[1].ID)
	assert.True(t, bookings[1].TripFare.Valid)
	assert.InDelta(t, 2100, bookings[1].TripFare.Float64, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetAll_WithFilter(t *testing.T) {
	repo, mock := newRepository(t)

	rows := sqlmock.NewRows(bookingColumns())
	addBookingRow(rows, model.Booking{
		ID:          "BK3",
		Timestamp:   time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC),
		Name:        "Asha Rao",
		Phone:       "9876543210",
		BookingType: "Package",
		Vehicle:     "Tempo Traveller AC",
	})

	mock.ExpectPrepare(`SELECT (.+) FROM bookings WHERE \(bookings.booking_type = (.+)\) LIMIT`).
		ExpectQuery().
		WithArgs("Package", 10, 0).
		WillReturnRows(rows)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingType,
				Operator: gDto.FilterOperatorEq,
				Value:    "Package",
				Table:    model.TableName,
			},
		},
	}

	bookings, err := repo.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "BK3", bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare("SELECT COUNT\\(bookings.id\\) FROM bookings").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background(), gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
