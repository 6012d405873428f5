//go:build wireinject
// +build wireinject

package di

import (
	"mountmix/config"
	"mountmix/infras/jwt"
	"mountmix/infras/otel"
	"mountmix/infras/sqlite"
	"mountmix/internal/bootstrap"
	adminHandler "mountmix/internal/handlers/admin"
	bookingHandler "mountmix/internal/handlers/booking"
	healthHandler "mountmix/internal/handlers/health"
	"mountmix/transport/http"
	"mountmix/transport/http/middleware"
	"mountmix/transport/http/router"

	adminRepository "mountmix/internal/domains/admin/repository"
	adminService "mountmix/internal/domains/admin/service"
	authService "mountmix/internal/domains/auth/service"
	bookingRepository "mountmix/internal/domains/booking/repository"
	bookingService "mountmix/internal/domains/booking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAuthMiddleware,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	adminDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		bootstrap.New,
		http.New,
	)

	return &http.HTTP{}
}
