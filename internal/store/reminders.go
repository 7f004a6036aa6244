package store

import (
	"context"
	"fmt"
	"time"

	"pet-care-tracker/internal/domain/reminders"
	"pet-care-tracker/internal/ports/notify"
)

// AllReminders devuelve todos en orden de inserción.
func (s *Store) AllReminders() []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.list()
}

func (s *Store) Reminder(id string) (reminders.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.get(id)
}

func (s *Store) PetReminders(petID string) []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ownedBy(&s.reminders, petID)
}

func (s *Store) AddReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	s.mu.Lock()
	created, err := insert(ctx, s, &s.reminders, r)
	s.mu.Unlock()
	if err != nil {
		return reminders.Reminder{}, err
	}

	s.emit(ctx, toast(KeyReminders, created.ID, "Reminder Added",
		fmt.Sprintf("A new reminder for %s has been added.", created.Title)))
	return created, nil
}

func (s *Store) UpdateReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	s.mu.Lock()
	updated, err := replace(ctx, s, &s.reminders, r)
	s.mu.Unlock()
	if err != nil {
		return reminders.Reminder{}, err
	}

	s.emit(ctx, toast(KeyReminders, updated.ID, "Reminder Updated",
		fmt.Sprintf("The reminder for %s has been updated.", updated.Title)))
	return updated, nil
}

func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	removed, found, err := remove(ctx, s, &s.reminders, id)
	s.mu.Unlock()
	if err != nil || !found {
		return err
	}

	s.emit(ctx, toast(KeyReminders, removed.ID, "Reminder Removed",
		fmt.Sprintf("The reminder for %s has been removed.", removed.Title)))
	return nil
}

// ToggleReminderComplete invierte isComplete. Si el id no existe devuelve found=false
// sin error y sin escribir. No genera toast, solo un aviso de cambio de estado.
func (s *Store) ToggleReminderComplete(ctx context.Context, id string) (reminders.Reminder, bool, error) {
	s.mu.Lock()
	current, ok := s.reminders.get(id)
	if !ok {
		s.mu.Unlock()
		return reminders.Reminder{}, false, nil
	}
	current.IsComplete = !current.IsComplete
	toggled, err := replace(ctx, s, &s.reminders, current)
	s.mu.Unlock()
	if err != nil {
		return reminders.Reminder{}, false, err
	}

	s.emit(ctx, notify.Event{
		Kind:       notify.KindStateChanged,
		Collection: KeyReminders,
		ID:         toggled.ID,
	})
	return toggled, true, nil
}

// TodayReminders: diarios más los que caen hoy, ordenados por hora.
func (s *Store) TodayReminders() []reminders.Reminder {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reminders.Today(s.reminders.items, now, s.loc)
}

// UpcomingReminders incluye hoy y hoy+days (ambos extremos).
func (s *Store) UpcomingReminders(days int) []reminders.Reminder {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reminders.Upcoming(s.reminders.items, now, days, s.loc)
}

func (s *Store) RemindersOn(day time.Time) []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reminders.On(s.reminders.items, day, s.loc)
}

// ReminderCalendar arma days días consecutivos desde from, marcando hoy.
func (s *Store) ReminderCalendar(from time.Time, days int) []reminders.Day {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reminders.Calendar(s.reminders.items, from, days, now, s.loc)
}
