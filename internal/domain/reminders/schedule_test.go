package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testLoc = time.FixedZone("UTC-3", -3*3600)

func at(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, testLoc)
	return &t
}

func ids(items []Reminder) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func fixture() []Reminder {
	return []Reminder{
		{ID: "walk", Frequency: FrequencyDaily, Time: "18:00"},
		{ID: "feed", Frequency: FrequencyDaily, Time: "08:00"},
		{ID: "vet-today", Frequency: FrequencyOnce, Time: "09:30", Date: at(2024, 6, 10, 15, 0)},
		{ID: "groom-tomorrow", Frequency: FrequencyWeekly, Time: "07:00", Date: at(2024, 6, 11, 7, 0)},
		{ID: "pill-plus7", Frequency: FrequencyMonthly, Time: "06:00", Date: at(2024, 6, 17, 23, 59)},
		{ID: "pill-plus8", Frequency: FrequencyMonthly, Time: "06:00", Date: at(2024, 6, 18, 0, 0)},
		{ID: "yesterday", Frequency: FrequencyOnce, Time: "10:00", Date: at(2024, 6, 9, 23, 59)},
		{ID: "undated", Frequency: FrequencyWeekly, Time: "05:00"},
	}
}

func TestToday_DailyPlusSameDay_SortedByTime(t *testing.T) {
	now := time.Date(2024, 6, 10, 21, 0, 0, 0, testLoc)

	got := Today(fixture(), now, testLoc)

	assert.Equal(t, []string{"feed", "vet-today", "walk"}, ids(got))
}

func TestToday_UsesCalendarDayNotInstant(t *testing.T) {
	// 01:00 UTC del 11 sigue siendo el 10 en UTC-3
	now := time.Date(2024, 6, 11, 1, 0, 0, 0, time.UTC)

	got := Today(fixture(), now, testLoc)

	assert.Contains(t, ids(got), "vet-today")
	assert.NotContains(t, ids(got), "groom-tomorrow")
}

func TestUpcoming_InclusiveWindow(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, testLoc)

	got := ids(Upcoming(fixture(), now, 7, testLoc))

	assert.Contains(t, got, "pill-plus7")
	assert.NotContains(t, got, "pill-plus8")
	assert.NotContains(t, got, "yesterday")
	assert.NotContains(t, got, "undated")
	assert.Contains(t, got, "walk")
	assert.Contains(t, got, "feed")
}

func TestUpcoming_SortedByDayThenTime(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, testLoc)

	got := ids(Upcoming(fixture(), now, 7, testLoc))

	assert.Equal(t, []string{"feed", "vet-today", "walk", "groom-tomorrow", "pill-plus7"}, got)
}

func TestUpcoming_NegativeDaysMeansToday(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, testLoc)

	got := ids(Upcoming(fixture(), now, -3, testLoc))

	assert.Equal(t, []string{"feed", "vet-today", "walk"}, got)
}

func TestCalendar(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, testLoc)
	from := time.Date(2024, 6, 9, 0, 0, 0, 0, testLoc)

	days := Calendar(fixture(), from, 3, now, testLoc)

	if assert.Len(t, days, 3) {
		assert.False(t, days[0].IsToday)
		assert.True(t, days[1].IsToday)
		assert.Equal(t, []string{"feed", "yesterday", "walk"}, ids(days[0].Reminders))
		assert.Equal(t, []string{"groom-tomorrow", "feed", "walk"}, ids(days[2].Reminders))
		assert.True(t, days[2].HasReminders())
	}

	assert.Empty(t, Calendar(fixture(), from, 0, now, testLoc))
}

func TestValidate(t *testing.T) {
	ok := Reminder{PetID: "p1", Title: "Walk", Type: TypeWalking, Frequency: FrequencyDaily, Time: "18:00"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Time = "6pm"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = ok
	bad.Frequency = FrequencyOnce
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = ok
	bad.Type = "bath"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}
