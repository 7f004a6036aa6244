package reminders

import (
	"sort"
	"time"

	"pet-care-tracker/internal/platform/calendar"
)

// OccursOn indica si el recordatorio está activo en el día de calendario de day.
// daily siempre; el resto solo si su fecha cae ese mismo día.
func (r Reminder) OccursOn(day time.Time, loc *time.Location) bool {
	if r.Frequency == FrequencyDaily {
		return true
	}
	if r.Date == nil {
		return false
	}
	return calendar.SameDay(*r.Date, day, loc)
}

// On devuelve los recordatorios activos en el día de day, ordenados por hora.
func On(items []Reminder, day time.Time, loc *time.Location) []Reminder {
	out := make([]Reminder, 0)
	for _, r := range items {
		if r.OccursOn(day, loc) {
			out = append(out, r)
		}
	}
	SortByTime(out)
	return out
}

// Today es On evaluado con el día de now.
func Today(items []Reminder, now time.Time, loc *time.Location) []Reminder {
	return On(items, now, loc)
}

// Upcoming devuelve daily más los recordatorios con fecha en [hoy, hoy+days].
// Orden: día de ocurrencia (daily cuenta como hoy) y luego hora.
func Upcoming(items []Reminder, now time.Time, days int, loc *time.Location) []Reminder {
	if days < 0 {
		days = 0
	}
	from := calendar.StartOfDay(now, loc)
	to := calendar.AddDays(from, days)

	type entry struct {
		r   Reminder
		day time.Time
	}
	matched := make([]entry, 0)
	for _, r := range items {
		if r.Frequency == FrequencyDaily {
			matched = append(matched, entry{r: r, day: from})
			continue
		}
		if r.Date == nil {
			continue
		}
		if calendar.Within(*r.Date, from, to, loc) {
			matched = append(matched, entry{r: r, day: calendar.StartOfDay(*r.Date, loc)})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].day.Equal(matched[j].day) {
			return matched[i].day.Before(matched[j].day)
		}
		return matched[i].r.Time < matched[j].r.Time
	})

	out := make([]Reminder, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.r)
	}
	return out
}

// Day agrupa los recordatorios de un día de calendario (vista calendario).
type Day struct {
	Date      time.Time  `json:"date"`
	IsToday   bool       `json:"isToday"`
	Reminders []Reminder `json:"reminders"`
}

// HasReminders es la marca que la vista calendario pinta sobre el día.
func (d Day) HasReminders() bool { return len(d.Reminders) > 0 }

// Calendar arma days días consecutivos desde el día de from.
func Calendar(items []Reminder, from time.Time, days int, now time.Time, loc *time.Location) []Day {
	if days <= 0 {
		return []Day{}
	}
	start := calendar.StartOfDay(from, loc)
	today := calendar.StartOfDay(now, loc)

	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		d := calendar.AddDays(start, i)
		out = append(out, Day{
			Date:      d,
			IsToday:   d.Equal(today),
			Reminders: On(items, d, loc),
		})
	}
	return out
}

// SortByTime ordena in-place por HH:MM (comparación lexicográfica, formato fijo).
func SortByTime(items []Reminder) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
}
