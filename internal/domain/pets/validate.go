package pets

import (
	"errors"
	"fmt"
	"strings"

	"pet-care-tracker/internal/platform/sanitize"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Validate cumple el rol del formulario: el store no rechaza entradas bien tipadas,
// así que los handlers validan antes de invocarlo.
func (p Pet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("%w: type must be one of dog, cat, bird, fish, rabbit, other", ErrInvalidInput)
	}
	if p.Gender != "" && !p.Gender.Valid() {
		return fmt.Errorf("%w: gender must be male, female or unknown", ErrInvalidInput)
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	if p.Weight != nil && *p.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidInput)
	}

	for _, m := range p.Medications {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: medication name is required", ErrInvalidInput)
		}
		if m.StartDate.IsZero() {
			return fmt.Errorf("%w: medication startDate is required", ErrInvalidInput)
		}
		if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
			return fmt.Errorf("%w: medication endDate before startDate", ErrInvalidInput)
		}
	}
	for _, v := range p.Vaccinations {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("%w: vaccination name is required", ErrInvalidInput)
		}
		if v.DateAdministered.IsZero() {
			return fmt.Errorf("%w: vaccination dateAdministered is required", ErrInvalidInput)
		}
	}
	for _, r := range p.MedicalHistory {
		if !r.Type.Valid() {
			return fmt.Errorf("%w: medical record type %q", ErrInvalidInput, r.Type)
		}
		if r.Date.IsZero() {
			return fmt.Errorf("%w: medical record date is required", ErrInvalidInput)
		}
	}
	return nil
}

// Clean limpia los textos libres antes de guardar.
func (p Pet) Clean() Pet {
	p.Name = sanitize.Text(p.Name)
	p.Breed = sanitize.Text(p.Breed)
	p.Notes = sanitize.Text(p.Notes)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Allergies = sanitize.List(p.Allergies)
	p.DietaryRestrictions = sanitize.List(p.DietaryRestrictions)

	if p.Medications != nil {
		meds := make([]Medication, len(p.Medications))
		for i, m := range p.Medications {
			m.Name = sanitize.Text(m.Name)
			m.Dosage = sanitize.Text(m.Dosage)
			m.Frequency = sanitize.Text(m.Frequency)
			m.Notes = sanitize.Text(m.Notes)
			meds[i] = m
		}
		p.Medications = meds
	}
	if p.Vaccinations != nil {
		vacs := make([]Vaccination, len(p.Vaccinations))
		for i, v := range p.Vaccinations {
			v.Name = sanitize.Text(v.Name)
			v.Provider = sanitize.Text(v.Provider)
			v.Notes = sanitize.Text(v.Notes)
			vacs[i] = v
		}
		p.Vaccinations = vacs
	}
	if p.MedicalHistory != nil {
		recs := make([]MedicalRecord, len(p.MedicalHistory))
		for i, r := range p.MedicalHistory {
			r.Description = sanitize.Text(r.Description)
			r.Veterinarian = sanitize.Text(r.Veterinarian)
			r.Clinic = sanitize.Text(r.Clinic)
			recs[i] = r
		}
		p.MedicalHistory = recs
	}
	return p.Normalize()
}
