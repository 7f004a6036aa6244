package reminders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/calendar"
	"pet-care-tracker/internal/platform/sanitize"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Type string

const (
	TypeFeeding    Type = "feeding"
	TypeWalking    Type = "walking"
	TypeGrooming   Type = "grooming"
	TypeMedication Type = "medication"
	TypeVeterinary Type = "veterinary"
	TypeTraining   Type = "training"
	TypePlaytime   Type = "playtime"
	TypeDental     Type = "dental"
	TypeOther      Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFeeding, TypeWalking, TypeGrooming, TypeMedication, TypeVeterinary,
		TypeTraining, TypePlaytime, TypeDental, TypeOther:
		return true
	}
	return false
}

// Frequency define en qué días de calendario un recordatorio está activo.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type Reminder struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Title     string    `json:"title"`
	Type      Type      `json:"type"`
	Frequency Frequency `json:"frequency"`

	// Time es HH:MM (24h). Ancho fijo: se puede ordenar como string.
	Time string `json:"time"`
	// Date se ignora para daily; para once es el día, para weekly/monthly el ancla.
	Date *time.Time `json:"date,omitempty"`

	Notes      string `json:"notes,omitempty"`
	IsComplete bool   `json:"isComplete"`
}

func (r Reminder) RecordID() string { return r.ID }
func (r Reminder) OwnerID() string  { return r.PetID }

func (r Reminder) WithID(id string) Reminder {
	r.ID = id
	return r
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, r.Type)
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: frequency must be once, daily, weekly or monthly", ErrInvalidInput)
	}
	if err := calendar.ValidTimeOfDay(r.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if r.Frequency == FrequencyOnce && r.Date == nil {
		return fmt.Errorf("%w: date is required for once reminders", ErrInvalidInput)
	}
	return nil
}

func (r Reminder) Clean() Reminder {
	r.PetID = strings.TrimSpace(r.PetID)
	r.Title = sanitize.Text(r.Title)
	r.Notes = sanitize.Text(r.Notes)
	r.Time = strings.TrimSpace(r.Time)
	return r
}
