package booking

import (
	"net/http"

	"cabwise/infras/otel"
	"cabwise/internal/domains/booking/model"
	"cabwise/internal/domains/booking/model/dto"
	"cabwise/internal/domains/booking/service"
	"cabwise/shared"
	"cabwise/shared/constant"
	gDto "cabwise/shared/dto"
	"cabwise/shared/validator"
	"cabwise/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth func(http.Handler) http.Handler) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(auth)
			protected.Get("/", handler.GetBookings)
			protected.Get("/export", handler.ExportBookings)
		})
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a new cab booking with the provided details. Accepts the same payload as the widget endpoint.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.SubmitBookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param id query string false "Filter by booking reference"
// @Param booking_type query string false "Filter by booking type (Local, Outstation, Package)"
// @Param travel_date query string false "Filter by travel date (YYYY-MM-DD)"
// @Param phone_number query string false "Filter by customer phone number"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookingType := r.URL.Query().Get(model.FieldBookingType)
	travelDate := r.URL.Query().Get(model.FieldTravelDate)
	phone := r.URL.Query().Get(model.FieldPhone)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if bookingType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingType,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingType,
			Table:    model.TableName,
		})
	}

	if travelDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTravelDate,
			Operator: gDto.FilterOperatorEq,
			Value:    travelDate,
			Table:    model.TableName,
		})
	}

	if phone != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPhone,
			Operator: gDto.FilterOperatorEq,
			Value:    phone,
			Table:    model.TableName,
		})
	}

	// An explicit booking reference overrides the field filters.
	if id := r.URL.Query().Get(model.FieldID); id != "" {
		filterGroup = shared.FilterByID(id, model.FieldID, model.TableName)
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// ExportBookings streams every booking as a CSV download.
// @Summary Export bookings as CSV
// @Description Download all bookings as a CSV file laid out like the legacy spreadsheet.
// @Tags Booking
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)

	if err := handler.service.ExportCSV(ctx, w); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings exported successfully")
}
