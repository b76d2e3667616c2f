//go:build wireinject
// +build wireinject

package di

import (
	"cabwise/config"
	"cabwise/infras/distancematrix"
	"cabwise/infras/jwt"
	"cabwise/infras/kafka"
	"cabwise/infras/mail"
	"cabwise/infras/otel"
	"cabwise/infras/postgres"
	"cabwise/infras/redis"
	"cabwise/infras/s3"
	"cabwise/internal/notifier"
	"cabwise/shared/cache"
	"cabwise/transport/http"
	"cabwise/transport/http/middleware"
	"cabwise/transport/http/router"

	fareModel "cabwise/internal/domains/fare/model"

	authService "cabwise/internal/domains/auth/service"
	bookingRepository "cabwise/internal/domains/booking/repository"
	bookingService "cabwise/internal/domains/booking/service"
	distanceService "cabwise/internal/domains/distance/service"
	fareService "cabwise/internal/domains/fare/service"

	authHandler "cabwise/internal/handlers/auth"
	bookingHandler "cabwise/internal/handlers/booking"
	distanceHandler "cabwise/internal/handlers/distance"
	widgetHandler "cabwise/internal/handlers/widget"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mail.New,
	kafka.New,
	s3.New,
	distancematrix.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var fareDomain = wire.NewSet(
	fareModel.DefaultPricing,
	fareService.New,
)

var distanceDomain = wire.NewSet(
	distanceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	notifier.NewDefault,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	fareDomain,
	distanceDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	widgetHandler.New,
	authHandler.New,
	bookingHandler.New,
	distanceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
