package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldCustomerID     = "customer_id"
	FieldKind           = "kind"
	FieldGuestFirstname = "guest_firstname"
	FieldGuestLastname  = "guest_lastname"
	FieldGuestPhone     = "guest_phone"
	FieldGuestEmail     = "guest_email"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldPax            = "pax"
	FieldRateType       = "rate_type"
	FieldPrice          = "price"
	FieldBreakfastDone  = "breakfast_done"
	FieldPaymentStatus  = "payment_status"
	FieldBookingGroupID = "booking_group_id"
	FieldRoomsCount     = "rooms_count"
	FieldNotes          = "notes"
	FieldCreatedAt      = "created_at"
	FieldDeletedAt      = "deleted_at"

	KindCompany    = "company"
	KindIndividual = "individual"

	PaymentStatusDue  = "DUE"
	PaymentStatusPaid = "PAID"
	PaymentStatusNA   = "NA"
)

type Booking struct {
	ID             string     `db:"id"`
	RoomID         string     `db:"room_id"`
	CustomerID     *string    `db:"customer_id"`
	Kind           string     `db:"kind"`
	GuestFirstname string     `db:"guest_firstname"`
	GuestLastname  string     `db:"guest_lastname"`
	GuestPhone     string     `db:"guest_phone"`
	GuestEmail     string     `db:"guest_email"`
	CheckIn        time.Time  `db:"check_in"`
	CheckOut       time.Time  `db:"check_out"`
	Pax            int        `db:"pax"`
	RateType       string     `db:"rate_type"`
	Price          float64    `db:"price"`
	BreakfastDone  bool       `db:"breakfast_done"`
	PaymentStatus  string     `db:"payment_status"`
	BookingGroupID string     `db:"booking_group_id"`
	RoomsCount     int        `db:"rooms_count"`
	Notes          string     `db:"notes"`
	DeletedAt      *time.Time `db:"deleted_at"`
	RoomName       *string    `db:"room_name" table:"rooms" column:"name"`
	model.Metadata
}

// GetJoinQuery attaches the room label used by list views and exports.
func (Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id"
}

// RoomLabel returns the room name, falling back to the raw room id when the
// room row is gone.
func (b Booking) RoomLabel() string {
	if b.RoomName != nil && *b.RoomName != "" {
		return *b.RoomName
	}

	return b.RoomID
}

// GuestFullName combines the guest name parts, tolerating either being empty.
func (b Booking) GuestFullName() string {
	switch {
	case b.GuestFirstname == "":
		return b.GuestLastname
	case b.GuestLastname == "":
		return b.GuestFirstname
	default:
		return b.GuestFirstname + " " + b.GuestLastname
	}
}

// IsValidPaymentStatus reports whether s is one of the supported payment
// states.
func IsValidPaymentStatus(s string) bool {
	return s == PaymentStatusDue || s == PaymentStatusPaid || s == PaymentStatusNA
}
