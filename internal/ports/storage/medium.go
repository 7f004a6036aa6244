package storage

import "context"

// Medium es el almacenamiento clave-valor donde el store persiste cada colección
// completa (un arreglo JSON por clave).
type Medium interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
