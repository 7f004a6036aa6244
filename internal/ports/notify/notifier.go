package notify

import "context"

type Kind string

const (
	// KindToast es la notificación transitoria que la UI muestra al usuario.
	KindToast Kind = "toast"
	// KindStateChanged avisa que una colección cambió sin mensaje visible.
	KindStateChanged Kind = "state_changed"
)

// Event describe un cambio emitido por el store hacia los colaboradores de UI.
type Event struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Collection  string `json:"collection"`
	ID          string `json:"id,omitempty"`
}

// Notifier no debe bloquear: el store lo invoca al final de cada mutación.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Nop descarta todos los eventos.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}
