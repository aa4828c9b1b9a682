//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	"github.com/google/wire"

	authRepository "hotelier/internal/domains/auth/repository"
	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	dashboardService "hotelier/internal/domains/dashboard/service"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	newsletterRepository "hotelier/internal/domains/newsletter/repository"
	newsletterService "hotelier/internal/domains/newsletter/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	hotelHandler "hotelier/internal/handlers/hotel"
	newsletterHandler "hotelier/internal/handlers/newsletter"
	roomHandler "hotelier/internal/handlers/room"
	userHandler "hotelier/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	authRepository.New,
	hotelRepository.New,
	roomRepository.New,
	bookingRepository.New,
	newsletterRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	userService.New,
	hotelService.New,
	roomService.New,
	bookingService.New,
	newsletterService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	newsletterHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
