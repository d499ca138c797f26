package dto

import (
	"time"

	"frontdesk/internal/domains/customer/model"
	sharedModel "frontdesk/shared/model"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Kind        string `json:"kind"         validate:"required,oneof=company individual"`
	DisplayName string `json:"display_name" validate:"required"`
	Phone       string `json:"phone"        validate:"omitempty"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Notes       string `json:"notes"        validate:"omitempty"`
}

func (r *CreateCustomerRequest) ToModel(now time.Time) model.Customer {
	return model.Customer{
		ID:          uuid.NewString(),
		Kind:        r.Kind,
		DisplayName: r.DisplayName,
		Phone:       r.Phone,
		Email:       r.Email,
		Notes:       r.Notes,
		Metadata:    sharedModel.Metadata{CreatedAt: now},
	}
}

type CustomerResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *CustomerResponse) FromModel(customer model.Customer) {
	r.ID = customer.ID
	r.Kind = customer.Kind
	r.DisplayName = customer.DisplayName
	r.Phone = customer.Phone
	r.Email = customer.Email
	r.Notes = customer.Notes
	r.CreatedAt = customer.CreatedAt
}

type GetCustomersResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

func (r *GetCustomersResponse) FromModels(customers []model.Customer) {
	r.Items = make([]CustomerResponse, 0, len(customers))

	for _, customer := range customers {
		item := CustomerResponse{}
		item.FromModel(customer)

		r.Items = append(r.Items, item)
	}

	r.Total = len(r.Items)
}
