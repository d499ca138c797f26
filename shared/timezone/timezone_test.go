package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 6, 1, 15, 42, 7, 123, timezone.GetLocation())

	got := timezone.StartOfDay(in)

	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
}

func TestAddDays(t *testing.T) {
	start := time.Date(2024, 2, 28, 10, 0, 0, 0, timezone.GetLocation())

	assert.Equal(t, 29, timezone.AddDays(start, 1).Day(), "2024 is a leap year")
	assert.Equal(t, time.March, timezone.AddDays(start, 2).Month())
	assert.Equal(t, 27, timezone.AddDays(start, -1).Day())
}

func TestDayBucketIsHalfOpen(t *testing.T) {
	day := timezone.StartOfDay(time.Date(2024, 6, 5, 13, 0, 0, 0, timezone.GetLocation()))
	next := timezone.AddDays(day, 1)

	checkout := time.Date(2024, 6, 5, 0, 0, 0, 0, timezone.GetLocation())

	assert.False(t, checkout.Before(day))
	assert.True(t, checkout.Before(next))
}

func TestFormat(t *testing.T) {
	in := time.Date(2025, 3, 10, 0, 0, 0, 0, timezone.GetLocation())

	assert.Equal(t, "10/03/2025", timezone.Format(in, "02/01/2006"))
}
