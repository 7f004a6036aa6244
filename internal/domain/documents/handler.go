package documents

import (
	"context"
	"net/http"
	"strings"

	"pet-care-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

type Store interface {
	PetExists(id string) bool

	Documents() []Document
	Document(id string) (Document, bool)
	PetDocuments(petID string) []Document
	AddDocument(ctx context.Context, v Document) (Document, error)
	UpdateDocument(ctx context.Context, v Document) (Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, store Store) {
	r.Route("/documents", func(sr chi.Router) {
		sr.Get("/", listHandler(store))
		sr.Post("/", createHandler(store))
		sr.Get("/{documentID}", getHandler(store))
		sr.Put("/{documentID}", updateHandler(store))
		sr.Delete("/{documentID}", deleteHandler(store))
	})

	r.Get("/pets/{petID}/documents", listPetHandler(store))
}

// @Summary Listar documentos
// @Description Permite filtrar por tipo y por etiqueta (coincidencia exacta, sin distinguir mayúsculas).
// @Tags documents
// @Produce json
// @Param type query string false "vaccination, medical, prescription, insurance, registration, adoption u other"
// @Param tag query string false "Etiqueta"
// @Success 200 {array} Document
// @Failure 400 {string} string "type inválido"
// @Router /documents [get]
func listHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ := Type(strings.TrimSpace(r.URL.Query().Get("type")))
		if typ != "" && !typ.Valid() {
			http.Error(w, "unknown document type", http.StatusBadRequest)
			return
		}
		tag := strings.TrimSpace(r.URL.Query().Get("tag"))

		out := make([]Document, 0)
		for _, d := range store.Documents() {
			if typ != "" && d.Type != typ {
				continue
			}
			if tag != "" && !d.HasTag(tag) {
				continue
			}
			out = append(out, d)
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

func listPetHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !store.PetExists(petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, store.PetDocuments(petID))
	}
}

func createHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Document
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

		created, err := store.AddDocument(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusCreated, created)
	}
}

func getHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := store.Document(chi.URLParam(r, "documentID"))
		if !ok {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		respond.JSON(w, http.StatusOK, v)
	}
}

func updateHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "documentID")
		if _, ok := store.Document(id); !ok {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		var req Document
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

		updated, err := store.UpdateDocument(r.Context(), req)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteDocument(r.Context(), chi.URLParam(r, "documentID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		respond.NoContent(w)
	}
}
