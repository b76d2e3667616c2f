package widget

import (
	"net/http"

	"cabwise/infras/otel"
	bookingDto "cabwise/internal/domains/booking/model/dto"
	bookingService "cabwise/internal/domains/booking/service"
	distanceService "cabwise/internal/domains/distance/service"
	"cabwise/shared/constant"
	"cabwise/shared/failure"
	"cabwise/shared/validator"
	"cabwise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the legacy embed-widget surface at the server root. The
// widget predates the /v1 API and expects bare JSON envelopes without the
// data wrapper, so every response here goes through response.WithRawJSON.
type Handler struct {
	booking  bookingService.Booking
	distance distanceService.Distance
	otel     otel.Otel
}

func New(booking bookingService.Booking, distance distanceService.Distance, otel otel.Otel) Handler {
	return Handler{
		booking:  booking,
		distance: distance,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.SubmitBooking)
	router.Get("/", handler.Get)
}

// widgetError is the legacy failure envelope. The widget keys off the ok
// field, not the HTTP status code.
type widgetError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type distanceSuccess struct {
	Success  bool    `json:"success"`
	Distance float64 `json:"distance"`
}

type distanceError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type liveness struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// SubmitBooking accepts a raw widget form submission.
// @Summary Submit a booking from the embed widget
// @Description Accept a raw widget submission, normalize it, price it and persist it. Responds with the legacy widget envelope.
// @Tags Widget
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Widget Submission"
// @Success 200 {object} dto.SubmitBookingResponse "Booking saved"
// @Failure 400 {object} widget.widgetError
// @Failure 500 {object} widget.widgetError
// @Router / [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".widget.SubmitBooking")
	defer scope.End()

	req := bookingDto.SubmitBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("rejected widget submission")

		handler.withWidgetError(w, err)

		return
	}

	res, err := handler.booking.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		handler.withWidgetError(w, err)

		return
	}

	scope.AddEvent("Widget booking submitted successfully")

	response.WithRawJSON(w, http.StatusOK, res)
}

// Get dispatches on the action query parameter. With action=distance it runs
// a remote-only distance lookup; anything else answers the liveness probe.
// @Summary Widget GET surface
// @Description With action=distance, returns the remote distance between origin and destination. Otherwise returns a liveness payload.
// @Tags Widget
// @Produce json
// @Param action query string false "Action (distance)"
// @Param origin query string false "Origin place name"
// @Param destination query string false "Destination place name"
// @Success 200 {object} widget.distanceSuccess
// @Failure 400 {object} widget.distanceError
// @Router / [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get(constant.RequestParamAction) == constant.ActionDistance {
		handler.getDistance(w, r)

		return
	}

	response.WithRawJSON(w, http.StatusOK, liveness{OK: true, Message: "Booking service is running"})
}

func (handler *Handler) getDistance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".widget.GetDistance")
	defer scope.End()

	origin := r.URL.Query().Get(constant.RequestParamOrigin)
	destination := r.URL.Query().Get(constant.RequestParamDestination)

	if origin == constant.Empty || destination == constant.Empty {
		response.WithRawJSON(w, http.StatusBadRequest, distanceError{Error: "Missing origin or destination"})

		return
	}

	distanceKm, err := handler.distance.Lookup(ctx, origin, destination)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("distance lookup failed")

		response.WithRawJSON(w, http.StatusOK, distanceError{Error: err.Error()})

		return
	}

	scope.AddEvent("Distance resolved successfully")

	response.WithRawJSON(w, http.StatusOK, distanceSuccess{Success: true, Distance: distanceKm})
}

func (handler *Handler) withWidgetError(w http.ResponseWriter, err error) {
	response.WithRawJSON(w, failure.GetCode(err), widgetError{Error: err.Error()})
}
