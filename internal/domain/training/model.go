package training

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

type Progress string

const (
	ProgressNotStarted Progress = "not_started"
	ProgressInProgress Progress = "in_progress"
	ProgressMastered   Progress = "mastered"
)

type Session struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // minutos
	Skills   []string  `json:"skills"`
	Notes    string    `json:"notes,omitempty"`
	Progress Progress  `json:"progress"`
}

func (s Session) RecordID() string { return s.ID }
func (s Session) OwnerID() string  { return s.PetID }

func (s Session) WithID(id string) Session {
	s.ID = id
	return s
}

func (s Session) Normalize() Session {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	return s
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if s.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0 minutes", ErrInvalidInput)
	}
	switch s.Progress {
	case ProgressNotStarted, ProgressInProgress, ProgressMastered:
	default:
		return fmt.Errorf("%w: progress must be not_started, in_progress or mastered", ErrInvalidInput)
	}
	return nil
}

func (s Session) Clean() Session {
	s.PetID = strings.TrimSpace(s.PetID)
	s.Skills = sanitize.List(s.Skills)
	s.Notes = sanitize.Text(s.Notes)
	return s
}
