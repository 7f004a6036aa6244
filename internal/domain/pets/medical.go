package pets

import "time"

type Medication struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Dosage    string `json:"dosage"`    // "2 ml", "5 mg"
	Frequency string `json:"frequency"` // texto por ahora: "cada 12h"

	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Notes string `json:"notes,omitempty"`
}

type Vaccination struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	DateAdministered time.Time  `json:"dateAdministered"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`

	Provider string `json:"provider,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MedicalRecordType clasifica una entrada de la historia clínica.
type MedicalRecordType string

const (
	MedicalRecordCheckup   MedicalRecordType = "checkup"
	MedicalRecordIllness   MedicalRecordType = "illness"
	MedicalRecordSurgery   MedicalRecordType = "surgery"
	MedicalRecordEmergency MedicalRecordType = "emergency"
	MedicalRecordOther     MedicalRecordType = "other"
)

func (t MedicalRecordType) Valid() bool {
	switch t {
	case MedicalRecordCheckup, MedicalRecordIllness, MedicalRecordSurgery, MedicalRecordEmergency, MedicalRecordOther:
		return true
	}
	return false
}

type MedicalRecord struct {
	ID   string            `json:"id"`
	Date time.Time         `json:"date"`
	Type MedicalRecordType `json:"type"`

	Description  string   `json:"description"`
	Veterinarian string   `json:"veterinarian,omitempty"`
	Clinic       string   `json:"clinic,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	Attachments  []string `json:"attachments"`
}
