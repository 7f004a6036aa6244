package pets

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	age := 3
	neg := -1.5
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	cases := []struct {
		name    string
		pet     Pet
		wantErr bool
	}{
		{"ok", Pet{Name: "Buddy", Type: SpeciesDog, Age: &age}, false},
		{"blank name", Pet{Name: "  ", Type: SpeciesDog}, true},
		{"unknown species", Pet{Name: "Nemo", Type: "shark"}, true},
		{"bad gender", Pet{Name: "Nemo", Type: SpeciesFish, Gender: "x"}, true},
		{"negative weight", Pet{Name: "Nemo", Type: SpeciesFish, Weight: &neg}, true},
		{"medication ends before start", Pet{Name: "Rex", Type: SpeciesDog, Medications: []Medication{
			{Name: "Carprofen", StartDate: start, EndDate: &before},
		}}, true},
		{"medical record type", Pet{Name: "Rex", Type: SpeciesDog, MedicalHistory: []MedicalRecord{
			{Date: start, Type: "dentist"},
		}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pet.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestClean_StripsMarkup(t *testing.T) {
	p := Pet{
		Name:      " <i>Buddy</i> ",
		Notes:     `<script>alert(1)</script>Loves fetch & swimming`,
		Allergies: []string{"<b>chicken</b>", "  "},
	}.Clean()

	if p.Name != "Buddy" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Notes != "Loves fetch & swimming" {
		t.Fatalf("notes = %q", p.Notes)
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "chicken" {
		t.Fatalf("allergies = %v", p.Allergies)
	}
}

func TestAssignNestedIDs_KeepsExisting(t *testing.T) {
	n := 0
	newID := func() string {
		n++
		return "gen-" + string(rune('0'+n))
	}

	p := Pet{
		Vaccinations: []Vaccination{{ID: "keep", Name: "Rabies"}, {Name: "DHPP"}},
	}.AssignNestedIDs(newID)

	if p.Vaccinations[0].ID != "keep" || p.Vaccinations[1].ID != "gen-1" {
		t.Fatalf("unexpected ids: %+v", p.Vaccinations)
	}
	if p.Medications == nil || p.MedicalHistory == nil || p.Documents == nil {
		t.Fatalf("lists must be non-nil after AssignNestedIDs")
	}
}
