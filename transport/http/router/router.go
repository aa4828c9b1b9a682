package router

import (
	"hotelier/config"
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/dashboard"
	"hotelier/internal/handlers/hotel"
	"hotelier/internal/handlers/newsletter"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/user"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hotelier/docs" // swagger spec
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Hotel      hotel.Handler
	Room       room.Handler
	Booking    booking.Handler
	Newsletter newsletter.Handler
	Dashboard  dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

// SetupRoutes mounts the public API under /api and the admin API under /api/admin.
func (r *Router) SetupRoutes(mux chi.Router) {
	mux.Use(
		chiMiddleware.RequestID,
		r.Middleware.Tracing,
		r.Middleware.Metrics,
		r.Middleware.Recover,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
	)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorNotFound))
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorNotFound))
	})

	if r.Config.Metrics.Enable {
		mux.Handle(r.Config.Metrics.Route, promhttp.Handler())
	}

	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	handlers := r.DomainHandlers

	mux.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(r.Middleware.Actor(constant.ContextGuest))

			handlers.Auth.Router(public)
			handlers.Booking.PublicRouter(public)
			handlers.Newsletter.PublicRouter(public)

			public.Route("/hotels", func(hotels chi.Router) {
				handlers.Hotel.PublicRouter(hotels)
				handlers.Room.PublicRouter(hotels)
			})
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(r.Middleware.Actor(constant.ContextAdmin))

			handlers.Dashboard.Router(admin)
			handlers.User.Router(admin)
			handlers.Hotel.Router(admin)
			handlers.Room.Router(admin)
			handlers.Booking.Router(admin)
			handlers.Newsletter.Router(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
		Config:         config,
	}
}
