//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lend/config"
	"lend/infras/otel"
	"lend/infras/postgres"
	"lend/infras/redis"
	"lend/shared/cache"
	"lend/shared/timezone"
	"lend/transport/http"
	"lend/transport/http/middleware"
	"lend/transport/http/router"

	bookingRepository "lend/internal/domains/booking/repository"
	bookingService "lend/internal/domains/booking/service"
	itemRepository "lend/internal/domains/item/repository"
	itemService "lend/internal/domains/item/service"
	requestRepository "lend/internal/domains/request/repository"
	requestService "lend/internal/domains/request/service"
	userRepository "lend/internal/domains/user/repository"
	userService "lend/internal/domains/user/service"

	bookingHandler "lend/internal/handlers/booking"
	itemHandler "lend/internal/handlers/item"
	requestHandler "lend/internal/handlers/request"
	userHandler "lend/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewSystemClock,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemRepository.NewComment,
	itemService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var domains = wire.NewSet(
	userDomain,
	bookingDomain,
	itemDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	itemHandler.New,
	bookingHandler.New,
	requestHandler.New,
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
