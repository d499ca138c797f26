package maintenance

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
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
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey)
		routerGroup.Get("/purge-deleted", handler.PurgeDeleted)
		routerGroup.Post("/purge-deleted", handler.PurgeDeleted)
		routerGroup.Post("/archive-export", handler.ArchiveExport)
	})
}

// PurgeDeleted permanently removes bookings trashed beyond retention.
// @Summary Purge expired trash
// @Description Permanently delete bookings whose trash retention has lapsed.
// @Tags Maintenance
// @Produce json
// @Success 200 {object} response.Data[dto.PurgeResponse] "Purge receipt"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/purge-deleted [post]
// @Security ApiKeyAuth
func (handler *Handler) PurgeDeleted(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PurgeDeleted")
	defer scope.End()

	res, err := handler.service.Purge(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to purge deleted bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ArchiveExport renders a CSV export and uploads it to object storage.
// @Summary Archive bookings export
// @Description Render the CSV for a scope and upload it to the archive bucket.
// @Tags Maintenance
// @Produce json
// @Param scope query string false "Scope (today, past, future, range)"
// @Param from query string false "Range start (YYYY-MM-DD, scope=range)"
// @Param to query string false "Range end (YYYY-MM-DD, scope=range)"
// @Success 200 {object} response.Data[dto.ArchiveExportResponse] "Upload receipt"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/archive-export [post]
// @Security ApiKeyAuth
func (handler *Handler) ArchiveExport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveExport")
	defer scope.End()

	bookingScope := request.URL.Query().Get(constant.RequestParamScope)
	from := request.URL.Query().Get(constant.RequestParamFrom)
	to := request.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.ArchiveExport(ctx, bookingScope, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive export")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
