//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/metrics"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/internal/events"
	healthHandler "hotelier/internal/handlers/health"
	reportHandler "hotelier/internal/handlers/report"
	"hotelier/shared/cache"
	"hotelier/shared/lifecycle"
	"hotelier/shared/timezone"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	expenseRepository "hotelier/internal/domains/expense/repository"
	reportService "hotelier/internal/domains/report/service"
	reservationRepository "hotelier/internal/domains/reservation/repository"
	roomRepository "hotelier/internal/domains/room/repository"

	"github.com/google/wire"
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
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
	lifecycle.New,
)

var inventoryDomain = wire.NewSet(
	roomRepository.New,
	reservationRepository.New,
	expenseRepository.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	inventoryDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reportHandler.New,
	healthHandler.New,
	router.New,
)

var eventing = wire.NewSet(
	events.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		eventing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
