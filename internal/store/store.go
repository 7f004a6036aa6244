// Package store es el dueño único de todas las colecciones (mascotas, recordatorios y
// registros). Carga al iniciar, persiste la colección completa después de cada mutación
// y resuelve las consultas por fecha. Se construye una vez en main y se pasa
// explícitamente a quien lo use.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pet-care-tracker/internal/domain/documents"
	"pet-care-tracker/internal/domain/feeding"
	"pet-care-tracker/internal/domain/healthlogs"
	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/reminders"
	"pet-care-tracker/internal/domain/training"
	"pet-care-tracker/internal/platform/calendar"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/ports/notify"
	"pet-care-tracker/internal/ports/storage"

	"github.com/google/uuid"
)

// Claves de cada colección en el medium.
const (
	KeyPets             = "pets"
	KeyReminders        = "reminders"
	KeyHealthLogs       = "healthLogs"
	KeyFeedingSchedules = "feedingSchedules"
	KeyTrainingSessions = "trainingSessions"
	KeyDocuments        = "documents"
)

var (
	ErrNotFound = errors.New("not found")

	errIDExhausted = errors.New("could not generate a unique id")
)

const maxIDAttempts = 8

type Store struct {
	mu sync.RWMutex

	medium   storage.Medium
	now      func() time.Time
	loc      *time.Location
	newID    func() string
	notifier notify.Notifier
	log      logger.Logger

	pets       collection[pets.Pet]
	reminders  collection[reminders.Reminder]
	healthLogs collection[healthlogs.HealthLog]
	feeding    collection[feeding.Schedule]
	training   collection[training.Session]
	documents  collection[documents.Document]
}

type Option func(*Store)

// WithClock fija el reloj usado para "hoy" (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation define la zona horaria de los días de calendario.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDs reemplaza el generador de ids (por defecto uuid v4).
func WithIDs(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New carga todas las colecciones desde medium. Si no hay mascotas ni recordatorios
// persistidos, carga el dataset de ejemplo. Un snapshot corrupto es un error fatal.
func New(ctx context.Context, medium storage.Medium, opts ...Option) (*Store, error) {
	if medium == nil {
		return nil, errors.New("store: nil medium")
	}

	s := &Store{
		medium:   medium,
		now:      time.Now,
		loc:      time.Local,
		newID:    uuid.NewString,
		notifier: notify.Nop{},
		log:      logger.Nop(),

		pets:       newCollection(KeyPets, pets.Pet.Normalize),
		reminders:  newCollection[reminders.Reminder](KeyReminders, nil),
		healthLogs: newCollection(KeyHealthLogs, healthlogs.HealthLog.Normalize),
		feeding:    newCollection[feeding.Schedule](KeyFeedingSchedules, nil),
		training:   newCollection(KeyTrainingSessions, training.Session.Normalize),
		documents:  newCollection(KeyDocuments, documents.Document.Normalize),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(map[string]any{"component": "store"})

	s.mu.Lock()
	defer s.mu.Unlock()

	hasPets, err := load(ctx, s, &s.pets)
	if err != nil {
		return nil, err
	}
	hasReminders, err := load(ctx, s, &s.reminders)
	if err != nil {
		return nil, err
	}
	if _, err := load(ctx, s, &s.healthLogs); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s, &s.feeding); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s, &s.training); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s, &s.documents); err != nil {
		return nil, err
	}

	// Solo mascotas + recordatorios tienen seed, y van juntos para no dejar petId colgados.
	if !hasPets && !hasReminders {
		if err := s.seed(ctx); err != nil {
			return nil, err
		}
	}

	s.log.Info("store loaded", map[string]any{
		"pets":              len(s.pets.items),
		"reminders":         len(s.reminders.items),
		"health_logs":       len(s.healthLogs.items),
		"feeding_schedules": len(s.feeding.items),
		"training_sessions": len(s.training.items),
		"documents":         len(s.documents.items),
		"seeded":            !hasPets && !hasReminders,
	})
	return s, nil
}

func (s *Store) seed(ctx context.Context) error {
	seedPets, seedReminders := seedData(s.newID, s.now(), s.loc)
	if err := commit(ctx, s, &s.pets, seedPets); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := commit(ctx, s, &s.reminders, seedReminders); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// Snapshot es la vista de solo lectura de todas las colecciones.
type Snapshot struct {
	Pets             []pets.Pet             `json:"pets"`
	Reminders        []reminders.Reminder   `json:"reminders"`
	HealthLogs       []healthlogs.HealthLog `json:"healthLogs"`
	FeedingSchedules []feeding.Schedule     `json:"feedingSchedules"`
	TrainingSessions []training.Session     `json:"trainingSessions"`
	Documents        []documents.Document   `json:"documents"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Pets:             s.pets.list(),
		Reminders:        s.reminders.list(),
		HealthLogs:       s.healthLogs.list(),
		FeedingSchedules: s.feeding.list(),
		TrainingSessions: s.training.list(),
		Documents:        s.documents.list(),
	}
}

// Location es la zona horaria de los días de calendario.
func (s *Store) Location() *time.Location { return s.loc }

// Today es la medianoche local de hoy; se recalcula en cada llamada.
func (s *Store) Today() time.Time {
	return calendar.StartOfDay(s.now(), s.loc)
}

func (s *Store) freshID(taken func(string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && !taken(id) {
			return id, nil
		}
	}
	return "", errIDExhausted
}

func (s *Store) emit(ctx context.Context, ev notify.Event) {
	s.notifier.Notify(ctx, ev)
}

func toast(collection, id, title, description string) notify.Event {
	return notify.Event{
		Kind:        notify.KindToast,
		Title:       title,
		Description: description,
		Collection:  collection,
		ID:          id,
	}
}

// petName se usa en los mensajes; el llamador debe tener s.mu tomado.
func (s *Store) petName(petID string) string {
	if p, ok := s.pets.get(petID); ok && p.Name != "" {
		return p.Name
	}
	return "your pet"
}
