package feeding

import (
	"context"
	"net/http"

	"pet-care-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type Store interface {
	PetExists(id string) bool

	FeedingSchedules() []Schedule
	FeedingSchedule(id string) (Schedule, bool)
	PetFeedingSchedules(petID string) []Schedule
	AddFeedingSchedule(ctx context.Context, s Schedule) (Schedule, error)
	UpdateFeedingSchedule(ctx context.Context, s Schedule) (Schedule, error)
	DeleteFeedingSchedule(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/feeding-schedules", func(fr chi.Router) {
		fr.Get("/", listHandler(store))
		fr.Post("/", createHandler(store))
		fr.Get("/{scheduleID}", getHandler(store))
		fr.Put("/{scheduleID}", updateHandler(store))
		fr.Delete("/{scheduleID}", deleteHandler(store))
	})

	r.Get("/pets/{petID}/feeding-schedules", listPetHandler(store))
}

// @Summary Listar comidas programadas
// @Tags feeding
// @Produce json
// @Success 200 {array} Schedule
// @Router /feeding-schedules [get]
func listHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, store.FeedingSchedules())
	}
}

func listPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !store.PetExists(petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		items := store.PetFeedingSchedules(petID)
		SortByTime(items)
		respond.JSON(w, http.StatusOK, items)
	}
}

// @Summary Crear comida programada
// @Tags feeding
// @Accept json
// @Produce json
// @Param payload body Schedule true "Comida"
// @Success 201 {object} Schedule
// @Failure 400 {string} string "invalid json / validación / unknown pet"
// @Router /feeding-schedules [post]
func createHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Schedule
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

		created, err := store.AddFeedingSchedule(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusCreated, created)
	}
}

func getHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := store.FeedingSchedule(chi.URLParam(r, "scheduleID"))
		if !ok {
			http.Error(w, "feeding schedule not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, s)
	}
}

func updateHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "scheduleID")
		if _, ok := store.FeedingSchedule(id); !ok {
			http.Error(w, "feeding schedule not found", http.StatusNotFound)
			return
		}

		var req Schedule
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

		updated, err := store.UpdateFeedingSchedule(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteFeedingSchedule(r.Context(), chi.URLParam(r, "scheduleID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}
