// Package calendar agrupa la aritmética de días locales usada por recordatorios y registros.
// Todas las comparaciones son por día de calendario (medianoche local), nunca por instante.
package calendar

import (
	"errors"
	"strings"
	"time"
)

// DayLayout es el formato de fecha usado en query params y rutas (YYYY-MM-DD).
const DayLayout = "2006-01-02"

// TimeOfDayLayout es el formato fijo HH:MM (24h).
const TimeOfDayLayout = "15:04"

var ErrInvalidTimeOfDay = errors.New("time must be HH:MM (24h)")

// StartOfDay trunca t a la medianoche del día de calendario en loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay indica si a y b caen en el mismo día de calendario en loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// AddDays suma días de calendario (respeta cambios de horario, a diferencia de Add(24h)).
func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}

// Within indica si el día de t está en [from, to] (ambos ya truncados a medianoche).
func Within(t, from, to time.Time, loc *time.Location) bool {
	d := StartOfDay(t, loc)
	return !d.Before(from) && !d.After(to)
}

// ParseDay interpreta YYYY-MM-DD como medianoche en loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayLayout, strings.TrimSpace(s), loc)
}

// ValidTimeOfDay valida el formato HH:MM de ancho fijo.
// El ancho fijo es lo que permite ordenar lexicográficamente.
func ValidTimeOfDay(s string) error {
	if len(s) != len(TimeOfDayLayout) {
		return ErrInvalidTimeOfDay
	}
	if _, err := time.Parse(TimeOfDayLayout, s); err != nil {
		return ErrInvalidTimeOfDay
	}
	return nil
}
