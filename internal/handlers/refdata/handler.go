package refdata

import (
	"net/http"

	"frontdesk/infras/otel"
	conventionService "frontdesk/internal/domains/convention/service"
	ratecardService "frontdesk/internal/domains/ratecard/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	conventions conventionService.Convention
	rateCards   ratecardService.RateCard
	otel        otel.Otel
}

func New(conventions conventionService.Convention, rateCards ratecardService.RateCard, otel otel.Otel) Handler {
	return Handler{
		conventions: conventions,
		rateCards:   rateCards,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/conventions", handler.GetConventions)
	router.Get("/rates", handler.GetRates)
}

// GetConventions lists active conventions.
// @Summary Get active conventions
// @Description Retrieve the conventions currently eligible for discounted pricing.
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Data[dto.GetConventionsResponse] "Active conventions"
// @Failure 500 {object} response.Error
// @Router /v1/conventions [get]
func (handler *Handler) GetConventions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConventions")
	defer scope.End()

	res, err := handler.conventions.GetActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get conventions")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRates lists the rate card.
// @Summary Get rate card
// @Description Retrieve the price list per rate type.
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Data[dto.GetRateCardsResponse] "Rate card"
// @Failure 500 {object} response.Error
// @Router /v1/rates [get]
func (handler *Handler) GetRates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	res, err := handler.rateCards.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate cards")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
