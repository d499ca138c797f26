package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/export"
	"frontdesk/internal/domains/booking/model"
)

func strPtr(s string) *string {
	return &s
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:             "b-1",
		RoomID:         "room-1",
		RoomName:       strPtr("Camera Azzurra"),
		GuestFirstname: "Mario",
		GuestLastname:  "Rossi",
		CheckIn:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Pax:            3,
		Price:          105,
		BreakfastDone:  true,
		PaymentStatus:  model.PaymentStatusPaid,
	}
}

func TestRenderEmpty(t *testing.T) {
	got := string(export.Render(nil))

	assert.True(t, strings.HasPrefix(got, export.ByteOrderMark))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"id","camera","ospite","check_in","check_out","pax","prezzo","colazione","stato_pagamento"`)
}

func TestRenderRows(t *testing.T) {
	booking := sampleBooking()

	got := string(export.Render([]model.Booking{booking}))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"b-1","Camera Azzurra","Mario Rossi","10/03/2025","12/03/2025","3","105.00","sì","pagato"`, lines[1])
}

func TestRenderQuoteEscaping(t *testing.T) {
	booking := sampleBooking()
	booking.GuestFirstname = `Gigi "il Bomber"`
	booking.GuestLastname = ""

	got := string(export.Render([]model.Booking{booking}))

	assert.Contains(t, got, `"Gigi ""il Bomber"""`)
}

func TestRenderRoomFallback(t *testing.T) {
	booking := sampleBooking()
	booking.RoomName = nil

	got := string(export.Render([]model.Booking{booking}))

	assert.Contains(t, got, `"room-1"`)
}

func TestPaymentTokens(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{name: "paid", status: model.PaymentStatusPaid, want: `"pagato"`},
		{name: "due", status: model.PaymentStatusDue, want: `"da pagare"`},
		{name: "not available", status: model.PaymentStatusNA, want: `"n.d."`},
		{name: "unknown treated as not available", status: "whatever", want: `"n.d."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := sampleBooking()
			booking.PaymentStatus = tt.status
			booking.BreakfastDone = false

			got := string(export.Render([]model.Booking{booking}))

			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, `"no"`)
		})
	}
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "prenotazioni_today.csv", export.Filename("today"))
	assert.Equal(t, "prenotazioni_range_2025-03-10.csv", export.ArchiveFilename("range", "2025-03-10"))
}
