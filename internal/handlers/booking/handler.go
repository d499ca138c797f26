package booking

import (
	"net/http"
	"strconv"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/search", handler.SearchBookings)
		routerGroup.Get("/trash", handler.GetTrashedBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.Bearer)
			protected.Post("/", handler.CreateBooking)
			protected.Patch("/{id}", handler.UpdateBooking)
			protected.Patch("/{id}/flags", handler.UpdateBookingFlags)
			protected.Delete("/{id}", handler.DeleteBooking)
			protected.Post("/{id}/cancel", handler.CancelBooking)
		})
	})
}

// CreateBooking handles the creation of a booking group.
// @Summary Create bookings
// @Description Create one booking per requested room, sharing a group ID and stay dates.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.GetBookingsResponse] "Bookings created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking group created by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists bookings for a scope.
// @Summary List bookings
// @Description List bookings filtered by scope (today, past, future or an explicit range).
// @Tags Booking
// @Produce json
// @Param scope query string false "Scope (today, past, future, range)"
// @Param from query string false "Range start (YYYY-MM-DD, scope=range)"
// @Param to query string false "Range end (YYYY-MM-DD, scope=range)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true,
		model.FieldCheckIn, model.FieldCheckOut, model.FieldCreatedAt, model.FieldPrice, model.FieldGuestLastname)

	bookingScope := request.URL.Query().Get(constant.RequestParamScope)
	from := request.URL.Query().Get(constant.RequestParamFrom)
	to := request.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.List(ctx, bookingScope, from, to, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID fetches a single booking.
// @Summary Get booking by ID
// @Description Retrieve a single booking, including its room label.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, "id")

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking partially updates a booking.
// @Summary Update booking
// @Description Update booking fields. Pax and price sent as strings are coerced.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, "id")

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBookingFlags toggles the breakfast and payment flags.
// @Summary Update booking flags
// @Description Update breakfast_done and payment_status on a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateFlagsRequest true "Update Flags Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/flags [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingFlags(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingFlags")
	defer scope.End()

	id := chi.URLParam(request, "id")

	req := dto.UpdateFlagsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateFlags(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking flags")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteBooking soft deletes a booking.
// @Summary Delete booking
// @Description Soft delete a booking. It stays recoverable until the retention window lapses.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.DeleteBookingResponse] "Deletion receipt"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, "id")

	res, err := handler.service.SoftDelete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking. Same effect as deletion.
// @Summary Cancel booking
// @Description Cancel a booking. Equivalent to a soft delete.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.DeleteBookingResponse] "Cancellation receipt"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, "id")

	res, err := handler.service.SoftDelete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportBookings downloads bookings for a scope as CSV.
// @Summary Export bookings
// @Description Download the bookings of a scope as a CSV file.
// @Tags Booking
// @Produce text/csv
// @Param scope query string false "Scope (today, past, future, range)"
// @Param from query string false "Range start (YYYY-MM-DD, scope=range)"
// @Param to query string false "Range end (YYYY-MM-DD, scope=range)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
func (handler *Handler) ExportBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	bookingScope := request.URL.Query().Get(constant.RequestParamScope)
	from := request.URL.Query().Get(constant.RequestParamFrom)
	to := request.URL.Query().Get(constant.RequestParamTo)

	data, filename, err := handler.service.Export(ctx, bookingScope, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(writer, err)

		return
	}

	response.WithCSV(writer, filename, data)
}

// SearchBookings searches active bookings by guest name.
// @Summary Search bookings
// @Description Search active bookings by guest first or last name, optionally pinned to a day.
// @Tags Booking
// @Produce json
// @Param q query string true "Name fragment"
// @Param date query string false "Restrict to check-in day (YYYY-MM-DD)"
// @Param limit query int false "Maximum results"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Matching bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/search [get]
func (handler *Handler) SearchBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	query := request.URL.Query().Get(constant.RequestParamQuery)
	date := request.URL.Query().Get(constant.RequestParamDate)

	limit := 0
	if rawLimit := request.URL.Query().Get(constant.RequestParamLimit); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	res, err := handler.service.Search(ctx, query, date, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTrashedBookings lists soft deleted bookings inside the retention window.
// @Summary List trashed bookings
// @Description List soft deleted bookings still inside the retention window, newest first.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Trashed bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/trash [get]
func (handler *Handler) GetTrashedBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrashedBookings")
	defer scope.End()

	res, err := handler.service.Trash(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trashed bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
