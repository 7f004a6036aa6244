package training

import (
	"context"
	"net/http"
	"sort"

	"pet-care-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type Store interface {
	PetExists(id string) bool

	TrainingSessions() []Session
	TrainingSession(id string) (Session, bool)
	PetTrainingSessions(petID string) []Session
	AddTrainingSession(ctx context.Context, v Session) (Session, error)
	UpdateTrainingSession(ctx context.Context, v Session) (Session, error)
	DeleteTrainingSession(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/training-sessions", func(sr chi.Router) {
		sr.Get("/", listHandler(store))
		sr.Post("/", createHandler(store))
		sr.Get("/{sessionID}", getHandler(store))
		sr.Put("/{sessionID}", updateHandler(store))
		sr.Delete("/{sessionID}", deleteHandler(store))
	})

	r.Get("/pets/{petID}/training-sessions", listPetHandler(store))
}

func listHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, store.TrainingSessions())
	}
}

func listPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !store.PetExists(petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		items := store.PetTrainingSessions(petID)
		// historial: la sesión más reciente primero
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Date.After(items[j].Date)
		})
		respond.JSON(w, http.StatusOK, items)
	}
}

// @Summary Registrar sesión de entrenamiento
// @Description duration en minutos (> 0). progress: not_started, in_progress o mastered.
// @Tags training
// @Accept json
// @Produce json
// @Param payload body Session true "Sesión"
// @Success 201 {object} Session
// @Failure 400 {string} string "invalid json / validación / unknown pet"
// @Router /training-sessions [post]
func createHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Session
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

		created, err := store.AddTrainingSession(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusCreated, created)
	}
}

func getHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := store.TrainingSession(chi.URLParam(r, "sessionID"))
		if !ok {
			http.Error(w, "training session not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, v)
	}
}

func updateHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		if _, ok := store.TrainingSession(id); !ok {
			http.Error(w, "training session not found", http.StatusNotFound)
			return
		}

		var req Session
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

		updated, err := store.UpdateTrainingSession(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteTrainingSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}
