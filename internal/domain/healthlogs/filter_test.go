package healthlogs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 4, d, 9, 0, 0, 0, time.UTC) }
	items := []HealthLog{
		{ID: "a", PetID: "p1", Date: day(1), Behavior: "playful"},
		{ID: "b", PetID: "p1", Date: day(3), Symptoms: []string{"Cough"}},
		{ID: "c", PetID: "p2", Date: day(2)},
		{ID: "d", PetID: "p1", Date: day(5), Notes: "ate grass"},
	}

	got := Apply(items, ListFilter{PetID: "p1"})
	assert.Equal(t, []string{"d", "b", "a"}, logIDs(got))

	from, to := day(2), day(4)
	got = Apply(items, ListFilter{From: &from, To: &to})
	assert.Equal(t, []string{"b", "c"}, logIDs(got))

	got = Apply(items, ListFilter{Query: "cough"})
	assert.Equal(t, []string{"b"}, logIDs(got))

	got = Apply(items, ListFilter{Limit: 1})
	assert.Equal(t, []string{"d"}, logIDs(got))
}

func TestValidate(t *testing.T) {
	h := HealthLog{PetID: "p1", Date: time.Now(), Appetite: AppetiteNormal, Energy: EnergyHigh}
	assert.NoError(t, h.Validate())

	h.Energy = "sleepy"
	assert.ErrorIs(t, h.Validate(), ErrInvalidInput)
}

func logIDs(items []HealthLog) []string {
	out := make([]string, 0, len(items))
	for _, h := range items {
		out = append(out, h.ID)
	}
	return out
}
