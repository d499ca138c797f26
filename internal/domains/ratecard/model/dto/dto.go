package dto

import (
	"frontdesk/internal/domains/ratecard/model"
)

type RateCardResponse struct {
	RateType string  `json:"rate_type"`
	Price    float64 `json:"price"`
}

type GetRateCardsResponse struct {
	Items []RateCardResponse `json:"items"`
	Total int                `json:"total"`
}

func (r *GetRateCardsResponse) FromModels(rateCards []model.RateCard) {
	r.Items = make([]RateCardResponse, 0, len(rateCards))

	for _, rateCard := range rateCards {
		r.Items = append(r.Items, RateCardResponse{
			RateType: rateCard.RateType,
			Price:    rateCard.Price,
		})
	}

	r.Total = len(r.Items)
}
