package router

import (
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/customer"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/maintenance"
	"frontdesk/internal/handlers/refdata"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking     booking.Handler
	Dashboard   dashboard.Handler
	Room        room.Handler
	Customer    customer.Handler
	RefData     refdata.Handler
	Maintenance maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.RefData.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
