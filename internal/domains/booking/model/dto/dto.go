package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"frontdesk/internal/domains/booking/model"
	customerDto "frontdesk/internal/domains/customer/model/dto"
)

// FlexInt accepts both JSON numbers and numeric strings. Some clients post
// form values without casting them first.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)

	value, err := strconv.Atoi(string(raw))
	if err != nil {
		return fmt.Errorf("invalid integer value %s: %w", data, err)
	}

	*f = FlexInt(value)

	return nil
}

// FlexFloat accepts both JSON numbers and numeric strings.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", data, err)
	}

	*f = FlexFloat(value)

	return nil
}

// RoomLine is one room of a booking group. Guest fields override the main
// guest for that room only.
type RoomLine struct {
	RoomID         string  `json:"room_id"         validate:"required"`
	Pax            FlexInt `json:"pax"             validate:"required"`
	ConventionID   string  `json:"convention_id"   validate:"omitempty"`
	GuestFirstname string  `json:"guest_firstname" validate:"omitempty"`
	GuestLastname  string  `json:"guest_lastname"  validate:"omitempty"`
}

type CreateBookingRequest struct {
	Kind           string                             `json:"kind"            validate:"required,oneof=company individual"`
	CustomerID     string                             `json:"customer_id"     validate:"omitempty"`
	Customer       *customerDto.CreateCustomerRequest `json:"customer"        validate:"omitempty"`
	GuestFirstname string                             `json:"guest_firstname" validate:"required"`
	GuestLastname  string                             `json:"guest_lastname"  validate:"required"`
	GuestPhone     string                             `json:"guest_phone"     validate:"omitempty"`
	GuestEmail     string                             `json:"guest_email"     validate:"omitempty,email"`
	CheckIn        string                             `json:"check_in"        validate:"required,daydate"`
	CheckOut       string                             `json:"check_out"       validate:"required,daydate"`
	Rooms          []RoomLine                         `json:"rooms"           validate:"required,min=1,dive"`
	PaymentStatus  string                             `json:"payment_status"  validate:"omitempty,oneof=DUE PAID NA"`
	Notes          string                             `json:"notes"           validate:"omitempty"`
}

// UpdateBookingRequest is a partial update; nil fields stay untouched. Dates
// arrive as strings and are normalized by the service before hitting the
// datastore.
type UpdateBookingRequest struct {
	RoomID         *string    `json:"room_id"         db:"room_id"         validate:"omitempty"`
	GuestFirstname *string    `json:"guest_firstname" db:"guest_firstname" validate:"omitempty"`
	GuestLastname  *string    `json:"guest_lastname"  db:"guest_lastname"  validate:"omitempty"`
	GuestPhone     *string    `json:"guest_phone"     db:"guest_phone"     validate:"omitempty"`
	GuestEmail     *string    `json:"guest_email"     db:"guest_email"     validate:"omitempty,email"`
	CheckIn        *string    `json:"check_in"        db:"check_in"        validate:"omitempty,daydate"`
	CheckOut       *string    `json:"check_out"       db:"check_out"       validate:"omitempty,daydate"`
	Pax            *FlexInt   `json:"pax"             db:"pax"             validate:"omitempty"`
	RateType       *string    `json:"rate_type"       db:"rate_type"       validate:"omitempty,oneof=Singola Doppia Tripla Quadrupla"`
	Price          *FlexFloat `json:"price"           db:"price"           validate:"omitempty"`
	PaymentStatus  *string    `json:"payment_status"  db:"payment_status"  validate:"omitempty,oneof=DUE PAID NA"`
	BreakfastDone  *bool      `json:"breakfast_done"  db:"breakfast_done"  validate:"omitempty"`
	Notes          *string    `json:"notes"           db:"notes"           validate:"omitempty"`
}

// UpdateFlagsRequest is the narrow flags update; at least one field must be
// supplied.
type UpdateFlagsRequest struct {
	BreakfastDone *bool   `json:"breakfast_done" db:"breakfast_done" validate:"omitempty"`
	PaymentStatus *string `json:"payment_status" db:"payment_status" validate:"omitempty,oneof=DUE PAID NA"`
}

func (r UpdateFlagsRequest) IsEmpty() bool {
	return r.BreakfastDone == nil && r.PaymentStatus == nil
}

type BookingResponse struct {
	ID             string     `json:"id"`
	RoomID         string     `json:"room_id"`
	RoomName       string     `json:"room_name"`
	CustomerID     *string    `json:"customer_id,omitempty"`
	Kind           string     `json:"kind"`
	GuestFirstname string     `json:"guest_firstname"`
	GuestLastname  string     `json:"guest_lastname"`
	GuestPhone     string     `json:"guest_phone,omitempty"`
	GuestEmail     string     `json:"guest_email,omitempty"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       time.Time  `json:"check_out"`
	Pax            int        `json:"pax"`
	RateType       string     `json:"rate_type"`
	Price          float64    `json:"price"`
	BreakfastDone  bool       `json:"breakfast_done"`
	PaymentStatus  string     `json:"payment_status"`
	BookingGroupID string     `json:"booking_group_id"`
	RoomsCount     int        `json:"rooms_count"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.RoomName = booking.RoomLabel()
	r.CustomerID = booking.CustomerID
	r.Kind = booking.Kind
	r.GuestFirstname = booking.GuestFirstname
	r.GuestLastname = booking.GuestLastname
	r.GuestPhone = booking.GuestPhone
	r.GuestEmail = booking.GuestEmail
	r.CheckIn = booking.CheckIn
	r.CheckOut = booking.CheckOut
	r.Pax = booking.Pax
	r.RateType = booking.RateType
	r.Price = booking.Price
	r.BreakfastDone = booking.BreakfastDone
	r.PaymentStatus = booking.PaymentStatus
	r.BookingGroupID = booking.BookingGroupID
	r.RoomsCount = booking.RoomsCount
	r.Notes = booking.Notes
	r.CreatedAt = booking.CreatedAt
	r.DeletedAt = booking.DeletedAt
}

type GetBookingsResponse struct {
	Items     []BookingResponse `json:"items"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page,omitempty"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking, total, totalPage int) {
	r.Items = make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		item := BookingResponse{}
		item.FromModel(booking)

		r.Items = append(r.Items, item)
	}

	r.Total = total
	r.TotalPage = totalPage
}

type DeleteBookingResponse struct {
	OK        bool      `json:"ok"`
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deleted_at"`
}

type PurgeResponse struct {
	OK     bool  `json:"ok"`
	Purged int64 `json:"purged"`
}

type ArchiveExportResponse struct {
	OK  bool   `json:"ok"`
	Key string `json:"key"`
}

type DashboardResponse struct {
	RoomsCount      int               `json:"rooms_count"`
	ActiveToday     int               `json:"active_today"`
	AvailableRooms  int               `json:"available_rooms"`
	Arrivals        []BookingResponse `json:"arrivals"`
	Departures      []BookingResponse `json:"departures"`
	InHouseToday    []BookingResponse `json:"in_house_today"`
	InHouseTomorrow []BookingResponse `json:"in_house_tomorrow"`
	Recent          []BookingResponse `json:"recent"`
}

type CalendarResponse struct {
	Year int            `json:"year"`
	Days map[string]int `json:"days"`
}

// BookingEvent is the payload published to Kafka on lifecycle transitions.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToBookingResponses converts models for the dashboard buckets.
func ToBookingResponses(bookings []model.Booking) []BookingResponse {
	items := make([]BookingResponse, 0, len(bookings))

	for _, booking := range bookings {
		item := BookingResponse{}
		item.FromModel(booking)

		items = append(items, item)
	}

	return items
}
