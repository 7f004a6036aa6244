package store

import (
	"time"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/reminders"
)

// seedData es el estado inicial cuando no hay nada persistido: dos mascotas y seis
// recordatorios. Las fechas de los recordatorios son relativas a now.
func seedData(newID func() string, now time.Time, loc *time.Location) ([]pets.Pet, []reminders.Reminder) {
	day := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	intp := func(v int) *int { return &v }
	floatp := func(v float64) *float64 { return &v }
	inDays := func(n int) *time.Time {
		t := now.In(loc).AddDate(0, 0, n)
		return &t
	}

	buddy := pets.Pet{
		ID:           newID(),
		Name:         "Buddy",
		Type:         pets.SpeciesDog,
		Breed:        "Golden Retriever",
		Age:          intp(3),
		Weight:       floatp(65),
		ImageURL:     "/placeholder.svg",
		Notes:        "Loves to play fetch and swim",
		LastVetVisit: day(2023, time.November, 15),
		NextVetVisit: day(2024, time.May, 15),
	}.Normalize()

	whiskers := pets.Pet{
		ID:           newID(),
		Name:         "Whiskers",
		Type:         pets.SpeciesCat,
		Breed:        "Maine Coon",
		Age:          intp(5),
		Weight:       floatp(12),
		ImageURL:     "/placeholder.svg",
		Notes:        "Prefers wet food, loves to nap in sunbeams",
		LastVetVisit: day(2024, time.January, 10),
		NextVetVisit: day(2024, time.July, 10),
	}.Normalize()

	rems := []reminders.Reminder{
		{
			ID:        newID(),
			PetID:     buddy.ID,
			Title:     "Morning Feed",
			Type:      reminders.TypeFeeding,
			Frequency: reminders.FrequencyDaily,
			Time:      "08:00",
			Notes:     "1 cup of dry food",
		},
		{
			ID:        newID(),
			PetID:     buddy.ID,
			Title:     "Evening Walk",
			Type:      reminders.TypeWalking,
			Frequency: reminders.FrequencyDaily,
			Time:      "18:00",
			Notes:     "At least 30 minutes",
		},
		{
			ID:        newID(),
			PetID:     buddy.ID,
			Title:     "Heartworm Medication",
			Type:      reminders.TypeMedication,
			Frequency: reminders.FrequencyMonthly,
			Time:      "09:00",
			Date:      inDays(2),
			Notes:     "Give with food",
		},
		{
			ID:        newID(),
			PetID:     whiskers.ID,
			Title:     "Morning Feed",
			Type:      reminders.TypeFeeding,
			Frequency: reminders.FrequencyDaily,
			Time:      "07:30",
			Notes:     "Half a can of wet food",
		},
		{
			ID:        newID(),
			PetID:     whiskers.ID,
			Title:     "Evening Feed",
			Type:      reminders.TypeFeeding,
			Frequency: reminders.FrequencyDaily,
			Time:      "19:30",
			Notes:     "Half a can of wet food",
		},
		{
			ID:        newID(),
			PetID:     whiskers.ID,
			Title:     "Grooming Session",
			Type:      reminders.TypeGrooming,
			Frequency: reminders.FrequencyWeekly,
			Time:      "14:00",
			Date:      inDays(1),
			Notes:     "Brush fur thoroughly",
		},
	}

	return []pets.Pet{buddy, whiskers}, rems
}
