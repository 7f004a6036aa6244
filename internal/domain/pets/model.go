package pets

import (
	"time"
)

// Species define las especies soportadas.
// @Enum dog, cat, bird, fish, rabbit, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesFish   Species = "fish"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesFish, SpeciesRabbit, SpeciesOther:
		return true
	}
	return false
}

// Gender define el sexo de la mascota.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Pet es el perfil de una mascota. Los tags JSON son el formato persistido.
// Las listas nunca son nil después de Normalize (se serializan como []).
type Pet struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Type Species `json:"type"`

	Breed    string   `json:"breed,omitempty"`
	Age      *int     `json:"age,omitempty"`    // años
	Weight   *float64 `json:"weight,omitempty"` // unidad libre (lb/kg según la UI)
	ImageURL string   `json:"imageUrl,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Gender   Gender   `json:"gender,omitempty"`

	LastVetVisit *time.Time `json:"lastVetVisit,omitempty"`
	NextVetVisit *time.Time `json:"nextVetVisit,omitempty"`

	Allergies           []string        `json:"allergies"`
	DietaryRestrictions []string        `json:"dietaryRestrictions"`
	Medications         []Medication    `json:"medications"`
	Vaccinations        []Vaccination   `json:"vaccinations"`
	MedicalHistory      []MedicalRecord `json:"medicalHistory"`
	// Documents guarda ids de documents.Document asociados.
	Documents []string `json:"documents"`
}

func (p Pet) RecordID() string { return p.ID }

func (p Pet) WithID(id string) Pet {
	p.ID = id
	return p
}

// Normalize reemplaza listas ausentes por listas vacías.
func (p Pet) Normalize() Pet {
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = []string{}
	}
	if p.Medications == nil {
		p.Medications = []Medication{}
	}
	if p.Vaccinations == nil {
		p.Vaccinations = []Vaccination{}
	}
	if p.MedicalHistory == nil {
		p.MedicalHistory = []MedicalRecord{}
	}
	for i := range p.MedicalHistory {
		if p.MedicalHistory[i].Attachments == nil {
			p.MedicalHistory[i].Attachments = []string{}
		}
	}
	if p.Documents == nil {
		p.Documents = []string{}
	}
	return p
}

// AssignNestedIDs completa el id de vacunas, medicaciones e historia clínica que no lo tengan.
func (p Pet) AssignNestedIDs(newID func() string) Pet {
	p = p.Normalize()

	meds := make([]Medication, len(p.Medications))
	copy(meds, p.Medications)
	for i := range meds {
		if meds[i].ID == "" {
			meds[i].ID = newID()
		}
	}
	p.Medications = meds

	vacs := make([]Vaccination, len(p.Vaccinations))
	copy(vacs, p.Vaccinations)
	for i := range vacs {
		if vacs[i].ID == "" {
			vacs[i].ID = newID()
		}
	}
	p.Vaccinations = vacs

	recs := make([]MedicalRecord, len(p.MedicalHistory))
	copy(recs, p.MedicalHistory)
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = newID()
		}
	}
	p.MedicalHistory = recs

	return p
}
