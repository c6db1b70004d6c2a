package router

import (
	"github.com/go-chi/chi/v5"

	"lend/internal/handlers/booking"
	"lend/internal/handlers/item"
	"lend/internal/handlers/request"
	"lend/internal/handlers/user"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
	Request request.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Item.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Request.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
