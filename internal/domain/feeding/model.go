package feeding

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"pet-care-tracker/internal/platform/calendar"
	"pet-care-tracker/internal/platform/sanitize"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Schedule es una comida fija del día.
type Schedule struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	MealName    string `json:"mealName"`
	Time        string `json:"time"` // HH:MM
	PortionSize string `json:"portionSize"`
	FoodType    string `json:"foodType"`
	Notes       string `json:"notes,omitempty"`
}

func (s Schedule) RecordID() string { return s.ID }
func (s Schedule) OwnerID() string  { return s.PetID }

func (s Schedule) WithID(id string) Schedule {
	s.ID = id
	return s
}

func (s Schedule) Validate() error {
	if strings.TrimSpace(s.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(s.MealName) == "" {
		return fmt.Errorf("%w: mealName is required", ErrInvalidInput)
	}
	if err := calendar.ValidTimeOfDay(s.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s Schedule) Clean() Schedule {
	s.PetID = strings.TrimSpace(s.PetID)
	s.MealName = sanitize.Text(s.MealName)
	s.Time = strings.TrimSpace(s.Time)
	s.PortionSize = sanitize.Text(s.PortionSize)
	s.FoodType = sanitize.Text(s.FoodType)
	s.Notes = sanitize.Text(s.Notes)
	return s
}

// SortByTime ordena in-place por HH:MM (el plan del día de la mascota).
func SortByTime(items []Schedule) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
}
