package distance

import (
	"net/http"

	"cabwise/infras/otel"
	"cabwise/internal/domains/distance/service"
	"cabwise/shared/constant"
	"cabwise/shared/failure"
	"cabwise/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Distance
	otel    otel.Otel
}

func New(service service.Distance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/distance", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDistance)
	})
}

// GetDistance resolves the distance between two places.
// @Summary Resolve distance between two places
// @Description Resolve the distance in kilometers, walking the full fallback chain: remote lookup, coordinate table, fixed default.
// @Tags Distance
// @Produce json
// @Param origin query string true "Origin place name"
// @Param destination query string true "Destination place name"
// @Success 200 {object} response.Data[model.Result] "Resolved distance"
// @Failure 400 {object} response.Error
// @Router /v1/distance [get]
func (handler *Handler) GetDistance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistance")
	defer scope.End()

	origin := r.URL.Query().Get(constant.RequestParamOrigin)
	destination := r.URL.Query().Get(constant.RequestParamDestination)

	if origin == constant.Empty || destination == constant.Empty {
		err := failure.BadRequestFromString("origin and destination are required")
		scope.TraceError(err)
		log.Warn().Msg("distance request missing origin or destination")

		response.WithError(w, err)

		return
	}

	result := handler.service.Resolve(ctx, origin, destination)

	scope.AddEvent("Distance resolved via " + result.Source)

	response.WithJSON(w, http.StatusOK, result)
}
