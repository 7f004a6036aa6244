// Package respond reúne el writeJSON que antes se duplicaba en cada módulo.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes limita el cuerpo de los requests JSON (una mascota con historia
// clínica completa entra con holgura).
const MaxBodyBytes = 1 << 20

var ErrInvalidJSON = errors.New("invalid json")

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Decode lee un único objeto JSON del body. Cualquier error se reporta como ErrInvalidJSON.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after object", ErrInvalidJSON)
	}
	return nil
}
