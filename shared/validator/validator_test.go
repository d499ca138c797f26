package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	GuestFirstname string `json:"guest_firstname" validate:"required,max=100"`
	GuestLastname  string `json:"guest_lastname"  validate:"required,max=100"`
	CheckIn        string `json:"check_in"        validate:"required,daydate"`
	CheckOut       string `json:"check_out"       validate:"required,daydate"`
	Pax            int    `json:"pax"             validate:"required,min=1,max=4"`
}

func TestValidate_OK(t *testing.T) {
	body := `{"guest_firstname":"Mario","guest_lastname":"Rossi","check_in":"2025-03-10","check_out":"2025-03-12","pax":3}`

	payload := bookingPayload{}
	err := validator.Validate(strings.NewReader(body), &payload)

	assert.NoError(t, err)
	assert.Equal(t, "Mario", payload.GuestFirstname)
	assert.Equal(t, 3, payload.Pax)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "missing required field",
			body:    `{"guest_lastname":"Rossi","check_in":"2025-03-10","check_out":"2025-03-12","pax":1}`,
			wantMsg: "GuestFirstname is required",
		},
		{
			name:    "pax out of range",
			body:    `{"guest_firstname":"Mario","guest_lastname":"Rossi","check_in":"2025-03-10","check_out":"2025-03-12","pax":5}`,
			wantMsg: "Pax must be less than or equal to 4",
		},
		{
			name:    "malformed date",
			body:    `{"guest_firstname":"Mario","guest_lastname":"Rossi","check_in":"10/03/2025","check_out":"2025-03-12","pax":2}`,
			wantMsg: "CheckIn must be a date in YYYY-MM-DD form",
		},
		{
			name:    "broken json",
			body:    `{"guest_firstname":`,
			wantMsg: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bookingPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-03-10", "daydate"))
	assert.Error(t, validator.ValidateVar("not-a-date", "daydate"))
	assert.Error(t, validator.ValidateVar("PENDING", "oneof=DUE PAID NA"))
	assert.NoError(t, validator.ValidateVar("PAID", "oneof=DUE PAID NA"))
}
