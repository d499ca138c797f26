// Package export renders bookings as the Italian front-desk CSV. Output is
// deterministic: header row, one line per booking, every field quoted.
package export

import (
	"fmt"
	"strings"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

const (
	// ByteOrderMark keeps spreadsheet tools from misreading the encoding.
	ByteOrderMark = "\uFEFF"

	tokenYes       = "sì"
	tokenNo        = "no"
	tokenPaid      = "pagato"
	tokenDue       = "da pagare"
	tokenUndefined = "n.d."
)

var header = []string{"id", "camera", "ospite", "check_in", "check_out", "pax", "prezzo", "colazione", "stato_pagamento"}

// Record is one CSV line before quoting.
type Record struct {
	ID            string
	Room          string
	Guest         string
	CheckIn       string
	CheckOut      string
	Pax           string
	Price         string
	Breakfast     string
	PaymentStatus string
}

func FromBooking(booking model.Booking) Record {
	return Record{
		ID:            booking.ID,
		Room:          booking.RoomLabel(),
		Guest:         booking.GuestFullName(),
		CheckIn:       timezone.Format(booking.CheckIn, constant.DisplayDateFormat),
		CheckOut:      timezone.Format(booking.CheckOut, constant.DisplayDateFormat),
		Pax:           fmt.Sprintf("%d", booking.Pax),
		Price:         fmt.Sprintf("%.2f", booking.Price),
		Breakfast:     breakfastToken(booking.BreakfastDone),
		PaymentStatus: paymentToken(booking.PaymentStatus),
	}
}

func (r Record) fields() []string {
	return []string{r.ID, r.Room, r.Guest, r.CheckIn, r.CheckOut, r.Pax, r.Price, r.Breakfast, r.PaymentStatus}
}

// Render produces the complete CSV document. Zero bookings yields the BOM and
// header only.
func Render(bookings []model.Booking) []byte {
	var builder strings.Builder

	builder.WriteString(ByteOrderMark)
	builder.WriteString(line(header))

	for _, booking := range bookings {
		builder.WriteString(line(FromBooking(booking).fields()))
	}

	return []byte(builder.String())
}

// Filename derives the attachment name from the requested scope.
func Filename(scope string) string {
	return fmt.Sprintf("prenotazioni_%s.csv", scope)
}

// ArchiveFilename adds the render date for objects stored long-term.
func ArchiveFilename(scope, day string) string {
	return fmt.Sprintf("prenotazioni_%s_%s.csv", scope, day)
}

func line(fields []string) string {
	quoted := make([]string, 0, len(fields))

	for _, field := range fields {
		quoted = append(quoted, quote(field))
	}

	return strings.Join(quoted, ",") + "\n"
}

// quote wraps every field in double quotes, doubling embedded quotes.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func breakfastToken(done bool) string {
	if done {
		return tokenYes
	}

	return tokenNo
}

func paymentToken(status string) string {
	switch status {
	case model.PaymentStatusPaid:
		return tokenPaid
	case model.PaymentStatusDue:
		return tokenDue
	default:
		return tokenUndefined
	}
}
