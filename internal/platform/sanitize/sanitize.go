package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict elimina todo el markup; los textos libres se renderizan tal cual en la UI.
var strict = bluemonday.StrictPolicy()

// Text quita HTML y espacios sobrantes de un texto ingresado por el usuario.
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// bluemonday escapa entidades; las devolvemos a texto plano para no duplicar escapes en la UI.
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// List aplica Text a cada elemento y descarta los vacíos. Nunca devuelve nil.
func List(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = Text(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
