package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// record es lo mínimo que el store necesita de una entidad: id legible y reasignable.
type record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// ownedRecord es una entidad que cuelga de una mascota (petId).
type ownedRecord[T any] interface {
	record[T]
	OwnerID() string
}

// codec declara cómo se (de)serializa una colección: clave en el medium y defaults.
// Los campos fecha están tipados como time.Time en cada modelo, así que el mapeo
// JSON <-> fecha vive en la declaración del tipo y no en código suelto.
type codec[T any] struct {
	key       string
	normalize func(T) T
}

func (c codec[T]) encode(items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.key, err)
	}
	return b, nil
}

func (c codec[T]) decode(b []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	for i := range items {
		items[i] = c.apply(items[i])
	}
	return items, nil
}

func (c codec[T]) apply(v T) T {
	if c.normalize == nil {
		return v
	}
	return c.normalize(v)
}

// collection mantiene el orden de inserción. items se reemplaza completo en cada
// commit; nunca se muta in-place un slice ya publicado.
type collection[T record[T]] struct {
	codec codec[T]
	items []T
}

func newCollection[T record[T]](key string, normalize func(T) T) collection[T] {
	return collection[T]{
		codec: codec[T]{key: key, normalize: normalize},
		items: []T{},
	}
}

func (c *collection[T]) key() string { return c.codec.key }

func (c *collection[T]) index(id string) int {
	for i, v := range c.items {
		if v.RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// commit serializa items completo, lo escribe bajo la clave de la colección y recién
// entonces lo publica en memoria. Si la escritura falla el estado no cambia.
// El llamador debe tener s.mu tomado en escritura.
func commit[T record[T]](ctx context.Context, s *Store, c *collection[T], items []T) error {
	b, err := c.codec.encode(items)
	if err != nil {
		return err
	}
	if err := s.medium.Set(ctx, c.key(), b); err != nil {
		s.log.Error("persist failed", map[string]any{"collection": c.key(), "err": err})
		return fmt.Errorf("persist %s: %w", c.key(), err)
	}
	c.items = items
	s.log.Debug("collection persisted", map[string]any{
		"collection": c.key(),
		"count":      len(items),
		"bytes":      len(b),
	})
	return nil
}

// load devuelve false si la clave no existe en el medium.
func load[T record[T]](ctx context.Context, s *Store, c *collection[T]) (bool, error) {
	b, ok, err := s.medium.Get(ctx, c.key())
	if err != nil {
		return false, fmt.Errorf("load %s: %w", c.key(), err)
	}
	if !ok {
		return false, nil
	}
	items, err := c.codec.decode(b)
	if err != nil {
		return false, err
	}
	c.items = items
	return true, nil
}

func insert[T record[T]](ctx context.Context, s *Store, c *collection[T], v T) (T, error) {
	var zero T

	id, err := s.freshID(func(id string) bool {
		_, taken := c.get(id)
		return taken
	})
	if err != nil {
		return zero, err
	}
	v = c.codec.apply(v.WithID(id))

	items := make([]T, 0, len(c.items)+1)
	items = append(items, c.items...)
	items = append(items, v)

	if err := commit(ctx, s, c, items); err != nil {
		return zero, err
	}
	return v, nil
}

// replace es reemplazo completo por id (sin merge de campos).
func replace[T record[T]](ctx context.Context, s *Store, c *collection[T], v T) (T, error) {
	var zero T

	i := c.index(v.RecordID())
	if i < 0 {
		return zero, ErrNotFound
	}
	v = c.codec.apply(v)

	items := c.list()
	items[i] = v

	if err := commit(ctx, s, c, items); err != nil {
		return zero, err
	}
	return v, nil
}

// remove no falla si el id no existe: devuelve found=false.
func remove[T record[T]](ctx context.Context, s *Store, c *collection[T], id string) (T, bool, error) {
	var zero T

	removed, ok := c.get(id)
	if !ok {
		return zero, false, nil
	}
	items := c.filter(func(v T) bool { return v.RecordID() != id })

	if err := commit(ctx, s, c, items); err != nil {
		return zero, false, err
	}
	return removed, true, nil
}

func ownedBy[T ownedRecord[T]](c *collection[T], petID string) []T {
	return c.filter(func(v T) bool { return v.OwnerID() == petID })
}

// dropOwned borra todo lo que referencia petID. Si no hay nada que borrar no escribe.
func dropOwned[T ownedRecord[T]](ctx context.Context, s *Store, c *collection[T], petID string) (int, error) {
	items := c.filter(func(v T) bool { return v.OwnerID() != petID })
	removed := len(c.items) - len(items)
	if removed == 0 {
		return 0, nil
	}
	if err := commit(ctx, s, c, items); err != nil {
		return 0, err
	}
	return removed, nil
}
