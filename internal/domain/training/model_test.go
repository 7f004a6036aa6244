package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	ok := Session{
		PetID:    "p1",
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration: 20,
		Progress: ProgressInProgress,
	}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Duration = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = ok
	bad.Progress = "done"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = ok
	bad.Date = time.Time{}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}

func TestClean_DropsEmptySkills(t *testing.T) {
	s := Session{Skills: []string{" sit ", "", "<b>stay</b>"}, Notes: "<p>good boy</p>"}.Clean()

	assert.Equal(t, []string{"sit", "stay"}, s.Skills)
	assert.Equal(t, "good boy", s.Notes)
}
