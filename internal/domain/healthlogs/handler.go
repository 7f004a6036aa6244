package healthlogs

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

type Store interface {
	PetExists(id string) bool
	Location() *time.Location

	HealthLog(id string) (HealthLog, bool)
	PetHealthLogs(petID string) []HealthLog
	FindHealthLogs(filter ListFilter) []HealthLog
	AddHealthLog(ctx context.Context, h HealthLog) (HealthLog, error)
	UpdateHealthLog(ctx context.Context, h HealthLog) (HealthLog, error)
	DeleteHealthLog(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/health-logs", func(hr chi.Router) {
		hr.Get("/", listHealthLogsHandler(store))
		hr.Post("/", createHealthLogHandler(store))
		hr.Get("/{logID}", getHealthLogHandler(store))
		hr.Put("/{logID}", updateHealthLogHandler(store))
		hr.Delete("/{logID}", deleteHealthLogHandler(store))
	})

	r.Get("/pets/{petID}/health-logs", listPetHealthLogsHandler(store))
}

// @Summary Listar registros de salud
// @Description Más reciente primero. Permite filtrar por mascota, rango de fechas y texto libre (comportamiento, síntomas, notas).
// @Tags health-logs
// @Produce json
// @Param petId query string false "ID de la mascota"
// @Param from query string false "Fecha mínima (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (RFC3339 o YYYY-MM-DD, día completo)"
// @Param q query string false "Texto de búsqueda"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} HealthLog
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Router /health-logs [get]
func listHealthLogsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r, store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond.JSON(w, http.StatusOK, store.FindHealthLogs(filter))
	}
}

func listPetHealthLogsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !store.PetExists(petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, store.PetHealthLogs(petID))
	}
}

// @Summary Crear registro de salud
// @Tags health-logs
// @Accept json
// @Produce json
// @Param payload body HealthLog true "Registro"
// @Success 201 {object} HealthLog
// @Failure 400 {string} string "invalid json / validación / unknown pet"
// @Failure 500 {string} string "internal error"
// @Router /health-logs [post]
func createHealthLogHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HealthLog
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

		created, err := store.AddHealthLog(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusCreated, created)
	}
}

func getHealthLogHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := store.HealthLog(chi.URLParam(r, "logID"))
		if !ok {
			http.Error(w, "health log not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, h)
	}
}

func updateHealthLogHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "logID")
		if _, ok := store.HealthLog(id); !ok {
			http.Error(w, "health log not found", http.StatusNotFound)
			return
		}

		var req HealthLog
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

		updated, err := store.UpdateHealthLog(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteHealthLogHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteHealthLog(r.Context(), chi.URLParam(r, "logID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}

func parseListFilter(r *http.Request, loc *time.Location) (ListFilter, error) {
	q := r.URL.Query()

	limit := 50
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{
		PetID: strings.TrimSpace(q.Get("petId")),
		Query: strings.TrimSpace(q.Get("q")),
		Limit: limit,
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := parseBound(v, loc, false)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339 or YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := parseBound(v, loc, true)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339 or YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

// parseBound acepta un instante RFC3339 o un día; como cota superior el día
// incluye hasta su último instante.
func parseBound(v string, loc *time.Location, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	day, err := calendar.ParseDay(v, loc)
	if err != nil {
		return time.Time{}, err
	}
	if upper {
		return calendar.AddDays(day, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}
