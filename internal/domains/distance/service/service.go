package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"math"
	"strings"

	"cabwise/infras/distancematrix"
	"cabwise/infras/otel"
	"cabwise/internal/domains/distance/model"
	"cabwise/shared"
	"cabwise/shared/constant"

	"github.com/rs/zerolog/log"
)

const earthRadiusKm = 6371

type Distance interface {
	// Resolve walks the fallback chain and always produces a distance.
	Resolve(ctx context.Context, origin, destination string) model.Result
	// Lookup queries the remote distance matrix only, with no fallback.
	Lookup(ctx context.Context, origin, destination string) (float64, error)
}

type serviceImpl struct {
	client      distancematrix.Client
	coordinates map[string]model.Coordinate
	otel        otel.Otel
}

func New(client distancematrix.Client, otel otel.Otel) Distance {
	return &serviceImpl{
		client:      client,
		coordinates: model.FallbackCoordinates(),
		otel:        otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, origin, destination string) model.Result {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".distance.Resolve")
	defer scope.End()

	km, err := s.Lookup(ctx, origin, destination)
	if err == nil {
		return model.Result{
			OK:         true,
			DistanceKm: km,
			Source:     model.SourceDistanceMatrix,
		}
	}

	log.Warn().Err(err).
		Str("origin", origin).
		Str("destination", destination).
		Msg("remote distance lookup failed, using fallback")

	if km, ok := s.haversine(origin, destination); ok {
		return model.Result{
			DistanceKm: km,
			Source:     model.SourceCoordinateTable,
			Err:        err.Error(),
		}
	}

	return model.Result{
		DistanceKm: model.DefaultDistanceKm,
		Source:     model.SourceDefault,
		Err:        err.Error(),
	}
}

func (s *serviceImpl) Lookup(ctx context.Context, origin, destination string) (km float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".distance.Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	meters, err := s.client.DistanceMeters(ctx, origin, destination)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return shared.RoundMoney(float64(meters) / 1000), nil
}

func (s *serviceImpl) haversine(origin, destination string) (float64, bool) {
	from, okFrom := s.coordinates[coordinateKey(origin)]
	to, okTo := s.coordinates[coordinateKey(destination)]

	if !okFrom || !okTo {
		return 0, false
	}

	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*math.Pi/180)*math.Cos(to.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return shared.RoundMoney(earthRadiusKm * c), true
}

func coordinateKey(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), "")
}
