package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_GetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "bad request",
			err:  failure.BadRequestFromString("pax must be between 1 and 4"),
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  failure.NotFound("booking not found"),
			want: http.StatusNotFound,
		},
		{
			name: "unauthorized",
			err:  failure.Unauthorized("missing token"),
			want: http.StatusUnauthorized,
		},
		{
			name: "plain error maps to internal",
			err:  errors.New("connection refused"),
			want: http.StatusInternalServerError,
		},
		{
			name: "wrapped failure keeps its code",
			err:  fmt.Errorf("creating booking: %w", failure.BadRequestFromString("invalid date")),
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestFailure_NilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestFailure_Message(t *testing.T) {
	err := failure.Conflict("room already booked")
	assert.Equal(t, "room already booked", err.Error())
}
