package documents

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

type Type string

const (
	TypeVaccination  Type = "vaccination"
	TypeMedical      Type = "medical"
	TypePrescription Type = "prescription"
	TypeInsurance    Type = "insurance"
	TypeRegistration Type = "registration"
	TypeAdoption     Type = "adoption"
	TypeOther        Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVaccination, TypeMedical, TypePrescription, TypeInsurance,
		TypeRegistration, TypeAdoption, TypeOther:
		return true
	}
	return false
}

// Document es un papel escaneado (certificado, receta, póliza) asociado a la mascota.
type Document struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Title    string    `json:"title"`
	Type     Type      `json:"type"`
	Date     time.Time `json:"date"`
	ImageURL string    `json:"imageUrl"`
	Notes    string    `json:"notes,omitempty"`
	Tags     []string  `json:"tags"`
}

func (d Document) RecordID() string { return d.ID }
func (d Document) OwnerID() string  { return d.PetID }

func (d Document) WithID(id string) Document {
	d.ID = id
	return d
}

func (d Document) Normalize() Document {
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.PetID) == "" {
		return fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, d.Type)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

func (d Document) Clean() Document {
	d.PetID = strings.TrimSpace(d.PetID)
	d.Title = sanitize.Text(d.Title)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.Notes = sanitize.Text(d.Notes)
	d.Tags = sanitize.List(d.Tags)
	return d
}

func (d Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
