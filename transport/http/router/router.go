package router

import (
	"cabwise/internal/handlers/auth"
	"cabwise/internal/handlers/booking"
	"cabwise/internal/handlers/distance"
	"cabwise/internal/handlers/widget"
	"cabwise/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Widget   widget.Handler
	Auth     auth.Handler
	Booking  booking.Handler
	Distance distance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.RateLimit())
	router.Use(r.AuthMiddleware.APIKey)

	// The embed widget talks to the bare root, everything newer lives
	// under /v1.
	r.DomainHandlers.Widget.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Distance.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup, r.AuthMiddleware.Auth)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
