package store

import (
	"context"
	"fmt"
	"strings"

	"pet-care-tracker/internal/domain/documents"
	"pet-care-tracker/internal/domain/feeding"
	"pet-care-tracker/internal/domain/healthlogs"
	"pet-care-tracker/internal/domain/training"
)

// label es el nombre visible de un tipo de registro en los avisos ("Health Log").
type label string

const (
	labelHealthLog       label = "Health Log"
	labelFeedingSchedule label = "Feeding Schedule"
	labelTrainingSession label = "Training Session"
	labelDocument        label = "Document"
)

func (l label) lower() string { return strings.ToLower(string(l)) }

// Los registros que cuelgan de una mascota comparten el mismo ciclo add/update/delete;
// solo cambia la colección y el texto del aviso.

func addOwned[T ownedRecord[T]](ctx context.Context, s *Store, c *collection[T], v T, l label) (T, error) {
	s.mu.Lock()
	created, err := insert(ctx, s, c, v)
	name := s.petName(created.OwnerID())
	s.mu.Unlock()
	if err != nil {
		return created, err
	}

	s.emit(ctx, toast(c.key(), created.RecordID(), string(l)+" Added",
		fmt.Sprintf("A new %s for %s has been added.", l.lower(), name)))
	return created, nil
}

func updateOwned[T ownedRecord[T]](ctx context.Context, s *Store, c *collection[T], v T, l label) (T, error) {
	s.mu.Lock()
	updated, err := replace(ctx, s, c, v)
	name := s.petName(updated.OwnerID())
	s.mu.Unlock()
	if err != nil {
		return updated, err
	}

	s.emit(ctx, toast(c.key(), updated.RecordID(), string(l)+" Updated",
		fmt.Sprintf("The %s for %s has been updated.", l.lower(), name)))
	return updated, nil
}

func deleteOwned[T ownedRecord[T]](ctx context.Context, s *Store, c *collection[T], id string, l label) error {
	s.mu.Lock()
	removed, found, err := remove(ctx, s, c, id)
	name := s.petName(removed.OwnerID())
	s.mu.Unlock()
	if err != nil || !found {
		return err
	}

	s.emit(ctx, toast(c.key(), removed.RecordID(), string(l)+" Removed",
		fmt.Sprintf("The %s for %s has been removed.", l.lower(), name)))
	return nil
}

func getLocked[T record[T]](s *Store, c *collection[T], id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.get(id)
}

func listLocked[T record[T]](s *Store, c *collection[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.list()
}

func ownedLocked[T ownedRecord[T]](s *Store, c *collection[T], petID string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ownedBy(c, petID)
}

// --- health logs ---

func (s *Store) HealthLogs() []healthlogs.HealthLog { return listLocked(s, &s.healthLogs) }

func (s *Store) HealthLog(id string) (healthlogs.HealthLog, bool) {
	return getLocked(s, &s.healthLogs, id)
}

func (s *Store) PetHealthLogs(petID string) []healthlogs.HealthLog {
	return ownedLocked(s, &s.healthLogs, petID)
}

// FindHealthLogs aplica filtro por mascota, rango de fechas y texto (más reciente primero).
func (s *Store) FindHealthLogs(filter healthlogs.ListFilter) []healthlogs.HealthLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return healthlogs.Apply(s.healthLogs.items, filter)
}

func (s *Store) AddHealthLog(ctx context.Context, h healthlogs.HealthLog) (healthlogs.HealthLog, error) {
	return addOwned(ctx, s, &s.healthLogs, h, labelHealthLog)
}

func (s *Store) UpdateHealthLog(ctx context.Context, h healthlogs.HealthLog) (healthlogs.HealthLog, error) {
	return updateOwned(ctx, s, &s.healthLogs, h, labelHealthLog)
}

func (s *Store) DeleteHealthLog(ctx context.Context, id string) error {
	return deleteOwned(ctx, s, &s.healthLogs, id, labelHealthLog)
}

// --- feeding schedules ---

func (s *Store) FeedingSchedules() []feeding.Schedule { return listLocked(s, &s.feeding) }

func (s *Store) FeedingSchedule(id string) (feeding.Schedule, bool) {
	return getLocked(s, &s.feeding, id)
}

func (s *Store) PetFeedingSchedules(petID string) []feeding.Schedule {
	return ownedLocked(s, &s.feeding, petID)
}

func (s *Store) AddFeedingSchedule(ctx context.Context, f feeding.Schedule) (feeding.Schedule, error) {
	return addOwned(ctx, s, &s.feeding, f, labelFeedingSchedule)
}

func (s *Store) UpdateFeedingSchedule(ctx context.Context, f feeding.Schedule) (feeding.Schedule, error) {
	return updateOwned(ctx, s, &s.feeding, f, labelFeedingSchedule)
}

func (s *Store) DeleteFeedingSchedule(ctx context.Context, id string) error {
	return deleteOwned(ctx, s, &s.feeding, id, labelFeedingSchedule)
}

// --- training sessions ---

func (s *Store) TrainingSessions() []training.Session { return listLocked(s, &s.training) }

func (s *Store) TrainingSession(id string) (training.Session, bool) {
	return getLocked(s, &s.training, id)
}

func (s *Store) PetTrainingSessions(petID string) []training.Session {
	return ownedLocked(s, &s.training, petID)
}

func (s *Store) AddTrainingSession(ctx context.Context, t training.Session) (training.Session, error) {
	return addOwned(ctx, s, &s.training, t, labelTrainingSession)
}

func (s *Store) UpdateTrainingSession(ctx context.Context, t training.Session) (training.Session, error) {
	return updateOwned(ctx, s, &s.training, t, labelTrainingSession)
}

func (s *Store) DeleteTrainingSession(ctx context.Context, id string) error {
	return deleteOwned(ctx, s, &s.training, id, labelTrainingSession)
}

// --- documents ---

func (s *Store) Documents() []documents.Document { return listLocked(s, &s.documents) }

func (s *Store) Document(id string) (documents.Document, bool) {
	return getLocked(s, &s.documents, id)
}

func (s *Store) PetDocuments(petID string) []documents.Document {
	return ownedLocked(s, &s.documents, petID)
}

func (s *Store) AddDocument(ctx context.Context, d documents.Document) (documents.Document, error) {
	return addOwned(ctx, s, &s.documents, d, labelDocument)
}

func (s *Store) UpdateDocument(ctx context.Context, d documents.Document) (documents.Document, error) {
	return updateOwned(ctx, s, &s.documents, d, labelDocument)
}

func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	return deleteOwned(ctx, s, &s.documents, id, labelDocument)
}
