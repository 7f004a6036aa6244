package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-care-tracker/internal/adapters/storage/memory"
	"pet-care-tracker/internal/domain/documents"
	"pet-care-tracker/internal/domain/feeding"
	"pet-care-tracker/internal/domain/healthlogs"
	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/reminders"
	"pet-care-tracker/internal/domain/training"
	"pet-care-tracker/internal/ports/notify"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("UTC-3", -3*3600)

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 12, 0, 0, 0, testLoc)
}

type recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recorder) Notify(_ context.Context, ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Title)
	}
	return out
}

// flakyMedium delega en memoria pero puede fallar las escrituras a demanda.
type flakyMedium struct {
	*memory.Medium
	failSet bool
}

func (f *flakyMedium) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Medium.Set(ctx, key, value)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, medium *memory.Medium, opts ...Option) *Store {
	t.Helper()
	base := []Option{WithClock(fixedNow), WithLocation(testLoc)}
	s, err := New(context.Background(), medium, append(base, opts...)...)
	require.NoError(t, err)
	return s
}

// emptyStore arranca sin seed (colecciones persistidas vacías).
func emptyStore(t *testing.T, opts ...Option) (*Store, *memory.Medium) {
	t.Helper()
	m := memory.NewMedium()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, KeyPets, []byte(`[]`)))
	require.NoError(t, m.Set(ctx, KeyReminders, []byte(`[]`)))
	return newTestStore(t, m, opts...), m
}

func addPet(t *testing.T, s *Store, name string) pets.Pet {
	t.Helper()
	p, err := s.AddPet(context.Background(), pets.Pet{Name: name, Type: pets.SpeciesDog})
	require.NoError(t, err)
	return p
}

func TestNew_SeedsWhenEmpty(t *testing.T) {
	m := memory.NewMedium()
	s := newTestStore(t, m)

	ps := s.Pets()
	require.Len(t, ps, 2)
	assert.Equal(t, "Buddy", ps[0].Name)
	assert.Equal(t, "Whiskers", ps[1].Name)
	assert.Len(t, s.AllReminders(), 6)

	whiskers := ps[1]
	dailyFeeds := 0
	for _, r := range s.PetReminders(whiskers.ID) {
		if r.Type == reminders.TypeFeeding && r.Frequency == reminders.FrequencyDaily {
			dailyFeeds++
		}
	}
	assert.Equal(t, 2, dailyFeeds)

	assert.ElementsMatch(t, []string{KeyPets, KeyReminders}, m.Keys())
}

func TestNew_NoSeedWhenPersisted(t *testing.T) {
	s, _ := emptyStore(t)

	assert.Empty(t, s.Pets())
	assert.Empty(t, s.AllReminders())
}

func TestNew_CorruptSnapshotFails(t *testing.T) {
	m := memory.NewMedium()
	require.NoError(t, m.Set(context.Background(), KeyReminders, []byte(`{not json`)))

	_, err := New(context.Background(), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyReminders)
}

func TestAdd_AssignsUniqueIDs(t *testing.T) {
	ids := []string{"dup", "dup", "dup", "other"}
	i := 0
	next := func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
	s, _ := emptyStore(t, WithIDs(next))

	a := addPet(t, s, "A")
	b := addPet(t, s, "B")

	assert.Equal(t, "dup", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestAddPet_IgnoresClientIDAndFillsLists(t *testing.T) {
	s, _ := emptyStore(t, WithIDs(sequentialIDs()))

	p, err := s.AddPet(context.Background(), pets.Pet{
		ID:          "client-id",
		Name:        "Rex",
		Type:        pets.SpeciesDog,
		Medications: []pets.Medication{{Name: "Carprofen"}},
	})
	require.NoError(t, err)

	assert.NotEqual(t, "client-id", p.ID)
	assert.NotEmpty(t, p.Medications[0].ID)
	assert.NotNil(t, p.Allergies)
	assert.NotNil(t, p.Documents)
}

func TestUpdate_WholesaleReplacement(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)
	p := addPet(t, s, "Rex")

	r, err := s.AddReminder(ctx, reminders.Reminder{
		PetID: p.ID, Title: "Walk", Type: reminders.TypeWalking,
		Frequency: reminders.FrequencyDaily, Time: "18:00", Notes: "long one",
	})
	require.NoError(t, err)

	r.Notes = ""
	r.Time = "19:00"
	_, err = s.UpdateReminder(ctx, r)
	require.NoError(t, err)

	got, ok := s.Reminder(r.ID)
	require.True(t, ok)
	assert.Empty(t, got.Notes)
	assert.Equal(t, "19:00", got.Time)
}

func TestUpdate_UnknownID(t *testing.T) {
	s, _ := emptyStore(t)

	_, err := s.UpdatePet(context.Background(), pets.Pet{ID: "nope", Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateHealthLog(context.Background(), healthlogs.HealthLog{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePet_Cascades(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)
	rex := addPet(t, s, "Rex")
	luna := addPet(t, s, "Luna")

	for _, p := range []pets.Pet{rex, luna} {
		_, err := s.AddReminder(ctx, reminders.Reminder{PetID: p.ID, Title: "Feed", Type: reminders.TypeFeeding, Frequency: reminders.FrequencyDaily, Time: "08:00"})
		require.NoError(t, err)
		_, err = s.AddHealthLog(ctx, healthlogs.HealthLog{PetID: p.ID, Date: fixedNow(), Appetite: healthlogs.AppetiteNormal, Energy: healthlogs.EnergyNormal})
		require.NoError(t, err)
		_, err = s.AddFeedingSchedule(ctx, feeding.Schedule{PetID: p.ID, MealName: "Breakfast", Time: "08:00"})
		require.NoError(t, err)
		_, err = s.AddTrainingSession(ctx, training.Session{PetID: p.ID, Date: fixedNow(), Duration: 15, Progress: training.ProgressInProgress})
		require.NoError(t, err)
		_, err = s.AddDocument(ctx, documents.Document{PetID: p.ID, Title: "Rabies", Type: documents.TypeVaccination, Date: fixedNow()})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeletePet(ctx, rex.ID))

	_, ok := s.Pet(rex.ID)
	assert.False(t, ok)
	assert.Empty(t, s.PetReminders(rex.ID))
	assert.Empty(t, s.PetHealthLogs(rex.ID))
	assert.Empty(t, s.PetFeedingSchedules(rex.ID))
	assert.Empty(t, s.PetTrainingSessions(rex.ID))
	assert.Empty(t, s.PetDocuments(rex.ID))

	assert.True(t, s.PetExists(luna.ID))
	assert.Len(t, s.PetReminders(luna.ID), 1)
	assert.Len(t, s.PetHealthLogs(luna.ID), 1)
	assert.Len(t, s.PetFeedingSchedules(luna.ID), 1)
	assert.Len(t, s.PetTrainingSessions(luna.ID), 1)
	assert.Len(t, s.PetDocuments(luna.ID), 1)
}

func TestDelete_MissingIsSilent(t *testing.T) {
	rec := &recorder{}
	s, _ := emptyStore(t, WithNotifier(rec))

	assert.NoError(t, s.DeletePet(context.Background(), "nope"))
	assert.NoError(t, s.DeleteReminder(context.Background(), "nope"))
	assert.NoError(t, s.DeleteDocument(context.Background(), "nope"))
	assert.Empty(t, rec.titles())
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	s, _ := emptyStore(t, WithNotifier(rec))

	p := addPet(t, s, "Rex")
	r, err := s.AddReminder(ctx, reminders.Reminder{PetID: p.ID, Title: "Walk", Type: reminders.TypeWalking, Frequency: reminders.FrequencyDaily, Time: "18:00"})
	require.NoError(t, err)
	_, _, err = s.ToggleReminderComplete(ctx, r.ID)
	require.NoError(t, err)
	require.NoError(t, s.DeleteReminder(ctx, r.ID))
	require.NoError(t, s.DeletePet(ctx, p.ID))

	assert.Equal(t, []string{"Pet Added", "Reminder Added", "", "Reminder Removed", "Pet Removed"}, rec.titles())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, "Rex has been added to your pets.", rec.events[0].Description)
	assert.Equal(t, "A new reminder for Walk has been added.", rec.events[1].Description)
	assert.Equal(t, notify.KindStateChanged, rec.events[2].Kind)
}

func TestToggleReminderComplete(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)
	p := addPet(t, s, "Rex")
	r, err := s.AddReminder(ctx, reminders.Reminder{PetID: p.ID, Title: "Pill", Type: reminders.TypeMedication, Frequency: reminders.FrequencyDaily, Time: "09:00"})
	require.NoError(t, err)
	assert.False(t, r.IsComplete)

	toggled, found, err := s.ToggleReminderComplete(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, toggled.IsComplete)

	toggled, _, err = s.ToggleReminderComplete(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsComplete)

	_, found, err = s.ToggleReminderComplete(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFailedWriteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	m := &flakyMedium{Medium: memory.NewMedium()}
	require.NoError(t, m.Set(ctx, KeyPets, []byte(`[]`)))
	require.NoError(t, m.Set(ctx, KeyReminders, []byte(`[]`)))

	rec := &recorder{}
	s, err := New(ctx, m, WithClock(fixedNow), WithLocation(testLoc), WithNotifier(rec))
	require.NoError(t, err)
	p := addPet(t, s, "Rex")
	before := s.Snapshot()

	m.failSet = true
	_, err = s.AddPet(ctx, pets.Pet{Name: "Luna", Type: pets.SpeciesCat})
	require.Error(t, err)
	p.Name = "Renamed"
	_, err = s.UpdatePet(ctx, p)
	require.Error(t, err)
	require.Error(t, s.DeletePet(ctx, p.ID))

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Fatalf("state changed after failed writes (-before +after):\n%s", diff)
	}
	assert.Equal(t, []string{"Pet Added"}, rec.titles())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, m := emptyStore(t)

	weight := 4.2
	p, err := s.AddPet(ctx, pets.Pet{
		Name:         "Luna",
		Type:         pets.SpeciesCat,
		Weight:       &weight,
		LastVetVisit: ptr(time.Date(2024, 5, 2, 10, 30, 15, 123456789, testLoc)),
		Vaccinations: []pets.Vaccination{{Name: "Rabies", DateAdministered: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)}},
	})
	require.NoError(t, err)
	_, err = s.AddReminder(ctx, reminders.Reminder{PetID: p.ID, Title: "Vet", Type: reminders.TypeVeterinary, Frequency: reminders.FrequencyOnce, Time: "10:00", Date: ptr(fixedNow().AddDate(0, 0, 3))})
	require.NoError(t, err)
	_, err = s.AddHealthLog(ctx, healthlogs.HealthLog{PetID: p.ID, Date: fixedNow(), Appetite: healthlogs.AppetiteNormal, Energy: healthlogs.EnergyHigh, Symptoms: []string{"sneezing"}})
	require.NoError(t, err)
	_, err = s.AddTrainingSession(ctx, training.Session{PetID: p.ID, Date: fixedNow(), Duration: 10, Progress: training.ProgressMastered})
	require.NoError(t, err)

	reloaded := newTestStore(t, m)

	if diff := cmp.Diff(s.Snapshot(), reloaded.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestPersistence_EmptyCollectionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	m := memory.NewMedium()
	s := newTestStore(t, m)

	for _, p := range s.Pets() {
		require.NoError(t, s.DeletePet(ctx, p.ID))
	}
	assert.Empty(t, s.AllReminders())

	raw, ok, err := m.Get(ctx, KeyPets)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))

	reloaded := newTestStore(t, m)
	assert.Empty(t, reloaded.Pets())
	assert.Empty(t, reloaded.AllReminders())
}

func TestDateQueries_OnSeed(t *testing.T) {
	s := newTestStore(t, memory.NewMedium())

	today := s.TodayReminders()
	times := make([]string, 0, len(today))
	for _, r := range today {
		times = append(times, r.Time)
	}
	assert.Equal(t, []string{"07:30", "08:00", "18:00", "19:30"}, times)

	assert.Len(t, s.UpcomingReminders(7), 6)
	assert.Len(t, s.UpcomingReminders(1), 5)
	assert.Len(t, s.UpcomingReminders(0), 4)

	tomorrow := s.RemindersOn(s.Today().AddDate(0, 0, 1))
	require.Len(t, tomorrow, 5)
	assert.Equal(t, "Grooming Session", tomorrow[2].Title)

	days := s.ReminderCalendar(s.Today(), 3)
	require.Len(t, days, 3)
	assert.True(t, days[0].IsToday)
	assert.Len(t, days[2].Reminders, 5)
}

func TestFindHealthLogs(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)
	p := addPet(t, s, "Rex")

	for i := 0; i < 3; i++ {
		_, err := s.AddHealthLog(ctx, healthlogs.HealthLog{
			PetID: p.ID, Date: fixedNow().AddDate(0, 0, -i),
			Appetite: healthlogs.AppetiteNormal, Energy: healthlogs.EnergyNormal,
		})
		require.NoError(t, err)
	}

	got := s.FindHealthLogs(healthlogs.ListFilter{PetID: p.ID, Limit: 2})
	require.Len(t, got, 2)
	assert.True(t, got[0].Date.After(got[1].Date))
	assert.Len(t, s.HealthLogs(), 3)
}

func ptr[T any](v T) *T { return &v }
