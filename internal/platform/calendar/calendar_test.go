package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	// 02:00 UTC del 10 es todavía el 9 en UTC-5
	ts := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	got := StartOfDay(ts, loc)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, loc), got)
	assert.True(t, SameDay(ts, time.Date(2024, 3, 9, 23, 0, 0, 0, loc), loc))
	assert.False(t, SameDay(ts, time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), time.UTC))
}

func TestWithin_Inclusive(t *testing.T) {
	loc := time.UTC
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	to := AddDays(from, 7)

	assert.True(t, Within(from, from, to, loc))
	assert.True(t, Within(time.Date(2024, 5, 8, 23, 59, 0, 0, loc), from, to, loc))
	assert.False(t, Within(time.Date(2024, 5, 9, 0, 0, 0, 0, loc), from, to, loc))
	assert.False(t, Within(time.Date(2024, 4, 30, 23, 59, 0, 0, loc), from, to, loc))
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("X", 3600)

	d, err := ParseDay(" 2024-02-29 ", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), d)

	_, err = ParseDay("29/02/2024", loc)
	assert.Error(t, err)
}

func TestValidTimeOfDay(t *testing.T) {
	for _, ok := range []string{"00:00", "08:30", "23:59"} {
		assert.NoError(t, ValidTimeOfDay(ok), ok)
	}
	for _, bad := range []string{"", "8:30", "24:00", "12:60", "12-30", "08:30:00"} {
		assert.ErrorIs(t, ValidTimeOfDay(bad), ErrInvalidTimeOfDay, bad)
	}
}
