package dashboard

import (
	"net/http"
	"strconv"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Get("/calendar", handler.GetCalendar)
	})
}

// GetDashboard aggregates the front desk snapshot for today.
// @Summary Get dashboard
// @Description Today's arrivals, departures, in-house guests, availability and recent bookings.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard snapshot"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCalendar returns per-day occupied room counts for a year.
// @Summary Get occupancy calendar
// @Description Occupied room counts keyed by day for the requested year.
// @Tags Dashboard
// @Produce json
// @Param year query int true "Calendar year"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Occupancy by day"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/calendar [get]
func (handler *Handler) GetCalendar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	year, err := strconv.Atoi(request.URL.Query().Get(constant.RequestParamYear))
	if err != nil {
		err = failure.BadRequestFromString("year must be a number")
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse calendar year")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Calendar(ctx, year)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
