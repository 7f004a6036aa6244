package pets

import (
	"context"
	"net/http"

	"pet-care-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// Store es lo que los handlers de mascotas necesitan del store. Se declara acá
// para no importar el paquete store (que depende de este).
type Store interface {
	Pets() []Pet
	Pet(id string) (Pet, bool)
	AddPet(ctx context.Context, p Pet) (Pet, error)
	UpdatePet(ctx context.Context, p Pet) (Pet, error)
	DeletePet(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Get("/pets", listPetsHandler(store))
	r.Post("/pets", createPetHandler(store))
	r.Get("/pets/{petID}", getPetHandler(store))
	r.Put("/pets/{petID}", updatePetHandler(store))
	r.Delete("/pets/{petID}", deletePetHandler(store))
}

// @Summary Listar mascotas
// @Description Devuelve todas las mascotas en orden de alta.
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Router /pets [get]
func listPetsHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, store.Pets())
	}
}

// @Summary Crear mascota
// @Description Crea una mascota. El id lo asigna el servidor; si el body trae uno se ignora. Vacunas, medicaciones e historia clínica sin id reciben uno nuevo.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body Pet true "Datos de la mascota"
// @Success 201 {object} Pet
// @Failure 400 {string} string "invalid json / validación"
// @Failure 500 {string} string "internal error"
// @Router /pets [post]
func createPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Pet
		if err := respond.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		req = req.Clean()
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := store.AddPet(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		respond.JSON(w, http.StatusCreated, p)
	}
}

// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.Pet(chi.URLParam(r, "petID"))
		if !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, p)
	}
}

// @Summary Reemplazar mascota
// @Description Reemplazo completo (no es PATCH): los campos omitidos quedan vacíos.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body Pet true "Mascota completa"
// @Success 200 {object} Pet
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [put]
func updatePetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, ok := store.Pet(petID); !ok {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		var req Pet
		if err := respond.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El id de la ruta manda sobre el del body.
		req = req.WithID(petID).Clean()
		if err := req.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := store.UpdatePet(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		respond.JSON(w, http.StatusOK, updated)
	}
}

// @Summary Borrar mascota
// @Description Borra la mascota y en cascada sus recordatorios, registros de salud, comidas, entrenamientos y documentos. Un id inexistente no es error.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [delete]
func deletePetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeletePet(r.Context(), chi.URLParam(r, "petID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}
