package reminders

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/calendar"
	"pet-care-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const (
	defaultUpcomingDays = 7
	defaultCalendarDays = 7
	maxDays             = 366
)

// Store agrupa las operaciones de recordatorios más el chequeo de mascota
// (mismo patrón que PetOwnerLookup: interfaz chica para no importar el store).
type Store interface {
	PetExists(id string) bool
	Location() *time.Location
	Today() time.Time

	AllReminders() []Reminder
	Reminder(id string) (Reminder, bool)
	PetReminders(petID string) []Reminder
	AddReminder(ctx context.Context, r Reminder) (Reminder, error)
	UpdateReminder(ctx context.Context, r Reminder) (Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
	ToggleReminderComplete(ctx context.Context, id string) (Reminder, bool, error)

	TodayReminders() []Reminder
	UpcomingReminders(days int) []Reminder
	RemindersOn(day time.Time) []Reminder
	ReminderCalendar(from time.Time, days int) []Day
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(store))
		rr.Post("/", createReminderHandler(store))

		// Vistas por fecha (dashboard y calendario)
		rr.Get("/today", todayHandler(store))
		rr.Get("/upcoming", upcomingHandler(store))
		rr.Get("/calendar", calendarHandler(store))
		rr.Get("/on/{date}", onDateHandler(store))

		rr.Get("/{reminderID}", getReminderHandler(store))
		rr.Put("/{reminderID}", updateReminderHandler(store))
		rr.Delete("/{reminderID}", deleteReminderHandler(store))
		rr.Post("/{reminderID}/toggle", toggleHandler(store))
	})

	r.Get("/pets/{petID}/reminders", listPetRemindersHandler(store))
}

// @Summary Listar recordatorios
// @Tags reminders
// @Produce json
// @Success 200 {array} Reminder
// @Router /reminders [get]
func listRemindersHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, store.AllReminders())
	}
}

// @Summary Recordatorios de una mascota
// @Tags reminders
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Reminder
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/reminders [get]
func listPetRemindersHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !store.PetExists(petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, store.PetReminders(petID))
	}
}

// @Summary Crear recordatorio
// @Description petId debe ser una mascota existente. time es HH:MM (24h); date es obligatoria para frequency=once.
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body Reminder true "Recordatorio"
// @Success 201 {object} Reminder
// @Failure 400 {string} string "invalid json / validación / unknown pet"
// @Failure 500 {string} string "internal error"
// @Router /reminders [post]
func createReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Reminder
		if err := respond.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		req = req.Clean()
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !store.PetExists(req.PetID) {
			http.Error(w, "unknown pet", http.StatusBadRequest)
			return
		}

		created, err := store.AddReminder(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		respond.JSON(w, http.StatusCreated, created)
	}
}

func getReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, ok := store.Reminder(chi.URLParam(r, "reminderID"))
		if !ok {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, rem)
	}
}

// @Summary Reemplazar recordatorio
// @Description Reemplazo completo: notes omitido queda vacío.
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body Reminder true "Recordatorio completo"
// @Success 200 {object} Reminder
// @Failure 400 {string} string "invalid json / validación / unknown pet"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [put]
func updateReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "reminderID")
		if _, ok := store.Reminder(id); !ok {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		var req Reminder
		if err := respond.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		req = req.WithID(id).Clean()
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !store.PetExists(req.PetID) {
			http.Error(w, "unknown pet", http.StatusBadRequest)
			return
		}

		updated, err := store.UpdateReminder(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteReminderHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteReminder(r.Context(), chi.URLParam(r, "reminderID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}

// @Summary Marcar / desmarcar recordatorio
// @Description Invierte isComplete y devuelve el recordatorio actualizado.
// @Tags reminders
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Success 200 {object} Reminder
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/toggle [post]
func toggleHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toggled, found, err := store.ToggleReminderComplete(r.Context(), chi.URLParam(r, "reminderID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, toggled)
	}
}

// @Summary Recordatorios de hoy
// @Description Diarios más los que tienen fecha hoy, ordenados por hora.
// @Tags reminders
// @Produce json
// @Success 200 {array} Reminder
// @Router /reminders/today [get]
func todayHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, store.TodayReminders())
	}
}

// @Summary Próximos recordatorios
// @Description Diarios más los que tienen fecha entre hoy y hoy+days (inclusive).
// @Tags reminders
// @Produce json
// @Param days query int false "Ventana en días (0-366). Por defecto 7"
// @Success 200 {array} Reminder
// @Failure 400 {string} string "days inválido"
// @Router /reminders/upcoming [get]
func upcomingHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := parseDays(r, defaultUpcomingDays)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond.JSON(w, http.StatusOK, store.UpcomingReminders(days))
	}
}

// @Summary Vista calendario
// @Description Un elemento por día desde from, con sus recordatorios y la marca de hoy.
// @Tags reminders
// @Produce json
// @Param from query string false "Primer día YYYY-MM-DD. Por defecto hoy"
// @Param days query int false "Cantidad de días (0-366). Por defecto 7"
// @Success 200 {array} Day
// @Failure 400 {string} string "from / days inválidos"
// @Router /reminders/calendar [get]
func calendarHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := parseDays(r, defaultCalendarDays)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		from := store.Today()
		if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
			from, err = calendar.ParseDay(v, store.Location())
			if err != nil {
				http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		}

		respond.JSON(w, http.StatusOK, store.ReminderCalendar(from, days))
	}
}

// @Summary Recordatorios de un día
// @Tags reminders
// @Produce json
// @Param date path string true "Día YYYY-MM-DD"
// @Success 200 {array} Reminder
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /reminders/on/{date} [get]
func onDateHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := calendar.ParseDay(chi.URLParam(r, "date"), store.Location())
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		respond.JSON(w, http.StatusOK, store.RemindersOn(day))
	}
}

var errInvalidDays = errors.New("days must be an integer between 0 and 366")

func parseDays(r *http.Request, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("days"))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > maxDays {
		return 0, errInvalidDays
	}
	return n, nil
}
