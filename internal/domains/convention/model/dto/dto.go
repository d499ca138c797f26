package dto

import (
	"frontdesk/internal/domains/convention/model"
)

type ConventionResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	RateType string  `json:"rate_type"`
	Price    float64 `json:"price"`
	Active   bool    `json:"active"`
}

func (r *ConventionResponse) FromModel(convention model.Convention) {
	r.ID = convention.ID
	r.Name = convention.Name
	r.RateType = convention.RateType
	r.Price = convention.Price
	r.Active = convention.Active
}

type GetConventionsResponse struct {
	Items []ConventionResponse `json:"items"`
	Total int                  `json:"total"`
}

func (r *GetConventionsResponse) FromModels(conventions []model.Convention) {
	r.Items = make([]ConventionResponse, 0, len(conventions))

	for _, convention := range conventions {
		item := ConventionResponse{}
		item.FromModel(convention)

		r.Items = append(r.Items, item)
	}

	r.Total = len(r.Items)
}
