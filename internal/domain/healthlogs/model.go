package healthlogs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/sanitize"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Appetite string

const (
	AppetiteNormal    Appetite = "normal"
	AppetiteIncreased Appetite = "increased"
	AppetiteDecreased Appetite = "decreased"
	AppetiteNone      Appetite = "none"
)

type Energy string

const (
	EnergyNormal    Energy = "normal"
	EnergyHigh      Energy = "high"
	EnergyLow       Energy = "low"
	EnergyLethargic Energy = "lethargic"
)

// HealthLog es una observación diaria del estado de la mascota.
type HealthLog struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Date     time.Time `json:"date"`
	Weight   *float64  `json:"weight,omitempty"`
	Appetite Appetite  `json:"appetite"`
	Energy   Energy    `json:"energy"`
	Behavior string    `json:"behavior"`
	Symptoms []string  `json:"symptoms"`
	Notes    string    `json:"notes,omitempty"`
}

func (h HealthLog) RecordID() string { return h.ID }
func (h HealthLog) OwnerID() string  { return h.PetID }

func (h HealthLog) WithID(id string) HealthLog {
	h.ID = id
	return h
}

func (h HealthLog) Normalize() HealthLog {
	if h.Symptoms == nil {
		h.Symptoms = []string{}
	}
	return h
}

func (h HealthLog) Validate() error {
	if strings.TrimSpace(h.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if h.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	switch h.Appetite {
	case AppetiteNormal, AppetiteIncreased, AppetiteDecreased, AppetiteNone:
	default:
		return fmt.Errorf("%w: appetite must be normal, increased, decreased or none", ErrInvalidInput)
	}
	switch h.Energy {
	case EnergyNormal, EnergyHigh, EnergyLow, EnergyLethargic:
	default:
		return fmt.Errorf("%w: energy must be normal, high, low or lethargic", ErrInvalidInput)
	}
	if h.Weight != nil && *h.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidInput)
	}
	return nil
}

func (h HealthLog) Clean() HealthLog {
	h.PetID = strings.TrimSpace(h.PetID)
	h.Behavior = sanitize.Text(h.Behavior)
	h.Notes = sanitize.Text(h.Notes)
	h.Symptoms = sanitize.List(h.Symptoms)
	return h
}
