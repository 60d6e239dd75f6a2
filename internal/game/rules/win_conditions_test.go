package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/checkers/internal/game/core"
	"github.com/mitchelldurbincs/checkers/internal/testutil"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		decided bool
		str     string
	}{
		{"undecided", Outcome{}, false, "undecided"},
		{"draw", Outcome{Draw: true}, true, "draw"},
		{"dark wins", Outcome{Winner: core.TeamDark}, true, "Dark wins"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.decided, tt.outcome.IsDecided())
			assert.Equal(t, tt.str, tt.outcome.String())
		})
	}
}

func TestWinnerByImmobility(t *testing.T) {
	assert.Equal(t, core.TeamLight, WinnerByImmobility(core.TeamDark).Winner)
	assert.Equal(t, core.TeamDark, WinnerByImmobility(core.TeamLight).Winner)
}

func TestDrawCounter_RunsOut(t *testing.T) {
	dc := NewDrawCounter(testutil.NopLogger(), 3)
	assert.True(t, dc.Enabled())

	assert.False(t, dc.TurnPassed())
	assert.False(t, dc.TurnPassed())
	assert.Equal(t, 1, dc.Remaining())
	assert.True(t, dc.TurnPassed())
	assert.Equal(t, 0, dc.Remaining())
	assert.True(t, dc.TurnPassed(), "an exhausted counter stays exhausted")
}

func TestDrawCounter_ResetOnActivity(t *testing.T) {
	dc := NewDrawCounter(testutil.NopLogger(), 2)
	dc.TurnPassed()
	dc.Reset()
	assert.Equal(t, 2, dc.Remaining())

	assert.False(t, dc.TurnPassed())
	assert.True(t, dc.TurnPassed())
}

func TestDrawCounter_Disabled(t *testing.T) {
	dc := NewDrawCounter(testutil.NopLogger(), 0)
	assert.False(t, dc.Enabled())
	for i := 0; i < 100; i++ {
		assert.False(t, dc.TurnPassed())
	}
}
