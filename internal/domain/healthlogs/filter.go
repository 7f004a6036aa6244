package healthlogs

import (
	"sort"
	"strings"
	"time"
)

type ListFilter struct {
	PetID string
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
}

// Apply filtra y ordena por fecha desc (más reciente primero).
func Apply(items []HealthLog, filter ListFilter) []HealthLog {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]HealthLog, 0)
	for _, h := range items {
		if filter.PetID != "" && h.PetID != filter.PetID {
			continue
		}
		if filter.From != nil && h.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && h.Date.After(*filter.To) {
			continue
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			hay := strings.ToLower(h.Behavior + " " + h.Notes + " " + strings.Join(h.Symptoms, " "))
			if !strings.Contains(hay, strings.ToLower(q)) {
				continue
			}
		}
		out = append(out, h)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
