package export

import (
	"errors"
	"testing"

	"github.com/handiism/osu-music-export/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResults(t *testing.T) {
	r := NewResults()
	succeeded, failed := r.Summary()
	assert.Zero(t, succeeded)
	assert.Zero(t, failed)

	a := model.SongFolder{Name: "1 A - B"}
	b := model.SongFolder{Name: "2 C - D"}
	planA := &model.ExportPlan{Folder: a, FileName: "A - B.mp3"}

	r.RecordSuccess(a, planA)
	r.RecordFailure(b, errors.New("boom"))
	r.RecordFailure(b, errors.New("boom again"))

	succeeded, failed = r.Summary()
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 2, failed)

	outcomes := r.Outcomes()
	assert.Len(t, outcomes, 3)
	assert.True(t, outcomes[0].Succeeded())
	assert.False(t, outcomes[1].Succeeded())

	assert.Equal(t, []*model.ExportPlan{planA}, r.Plans())
	assert.Len(t, r.Failures(), 2)

	// Callers cannot rewrite history through the returned slice.
	outcomes[0] = Outcome{}
	assert.Equal(t, a, r.Outcomes()[0].Folder)
}
