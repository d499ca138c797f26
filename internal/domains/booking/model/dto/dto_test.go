package dto_test

import (
	"encoding/json"
	"testing"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	var value struct {
		Pax dto.FlexInt `json:"pax"`
	}

	err := json.Unmarshal([]byte(`{"pax": 3}`), &value)
	assert.NoError(t, err)
	assert.Equal(t, dto.FlexInt(3), value.Pax)

	err = json.Unmarshal([]byte(`{"pax": "2"}`), &value)
	assert.NoError(t, err)
	assert.Equal(t, dto.FlexInt(2), value.Pax)

	err = json.Unmarshal([]byte(`{"pax": "two"}`), &value)
	assert.Error(t, err)
}

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	var value struct {
		Price dto.FlexFloat `json:"price"`
	}

	err := json.Unmarshal([]byte(`{"price": 105.5}`), &value)
	assert.NoError(t, err)
	assert.Equal(t, dto.FlexFloat(105.5), value.Price)

	err = json.Unmarshal([]byte(`{"price": "80"}`), &value)
	assert.NoError(t, err)
	assert.Equal(t, dto.FlexFloat(80), value.Price)

	err = json.Unmarshal([]byte(`{"price": "free"}`), &value)
	assert.Error(t, err)
}

func TestUpdateFlagsRequest_IsEmpty(t *testing.T) {
	assert.True(t, dto.UpdateFlagsRequest{}.IsEmpty())

	done := true
	assert.False(t, dto.UpdateFlagsRequest{BreakfastDone: &done}.IsEmpty())

	status := model.PaymentStatusPaid
	assert.False(t, dto.UpdateFlagsRequest{PaymentStatus: &status}.IsEmpty())
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	roomName := "Camera Azzurra"

	bookingModel := model.Booking{
		ID:             "booking-1",
		RoomID:         "room-1",
		RoomName:       &roomName,
		Kind:           model.KindIndividual,
		GuestFirstname: "Mario",
		GuestLastname:  "Rossi",
		CheckIn:        now,
		CheckOut:       now.AddDate(0, 0, 2),
		Pax:            3,
		RateType:       "Tripla",
		Price:          105,
		PaymentStatus:  model.PaymentStatusDue,
		BookingGroupID: "group-1",
		RoomsCount:     1,
		Metadata: gModel.Metadata{
			CreatedAt: now,
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, roomName, response.RoomName)
	assert.Equal(t, bookingModel.GuestFirstname, response.GuestFirstname)
	assert.Equal(t, bookingModel.Pax, response.Pax)
	assert.Equal(t, bookingModel.RateType, response.RateType)
	assert.Equal(t, bookingModel.Price, response.Price)
	assert.Equal(t, bookingModel.BookingGroupID, response.BookingGroupID)
	assert.Nil(t, response.DeletedAt)
}

func TestBookingResponse_FromModelRoomFallback(t *testing.T) {
	bookingModel := model.Booking{
		ID:     "booking-1",
		RoomID: "room-1",
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, "room-1", response.RoomName)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1"},
		{ID: "booking-2"},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 12, 2)

	assert.Len(t, response.Items, 2)
	assert.Equal(t, "booking-1", response.Items[0].ID)
	assert.Equal(t, 12, response.Total)
	assert.Equal(t, 2, response.TotalPage)
}
