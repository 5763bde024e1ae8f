package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyForTSS(t *testing.T) {
	assert.Equal(t, DifficultyLow, DifficultyForTSS(0).Difficulty)
	assert.Equal(t, DifficultyLow, DifficultyForTSS(99.9).Difficulty)
	assert.Equal(t, DifficultyMedium, DifficultyForTSS(100).Difficulty)
	assert.Equal(t, DifficultyHigh, DifficultyForTSS(250).Difficulty)
	assert.Equal(t, DifficultyVeryHigh, DifficultyForTSS(399).Difficulty)

	extreme := DifficultyForTSS(1000)
	assert.Equal(t, DifficultyExtreme, extreme.Difficulty)
	assert.Equal(t, "72+ hours", extreme.Recovery)
	assert.Equal(t, "Extreme", extreme.Difficulty.String())
}

func TestPowerZones(t *testing.T) {
	zones, err := PowerZones(250)
	require.NoError(t, err)
	require.Len(t, zones, 7)

	assert.Equal(t, 1, zones[0].Number)
	assert.Equal(t, 0.0, zones[0].MinWatts)
	assert.InDelta(t, 137.5, zones[0].MaxWatts, 1e-9)
	assert.InDelta(t, 225, zones[3].MinWatts, 1e-9)
	assert.Equal(t, "Neuromuscular", zones[6].Name)
	assert.InDelta(t, 375, zones[6].MinWatts, 1e-9)
	assert.Equal(t, 0.0, zones[6].MaxWatts)

	for i := 1; i < len(zones); i++ {
		assert.Equal(t, zones[i-1].MaxWatts, zones[i].MinWatts)
	}

	_, err = PowerZones(0)
	assert.ErrorIs(t, err, ErrDivisionUndefined)
}

func TestRiderCategory(t *testing.T) {
	assert.Equal(t, "Professional", RiderCategory(5.0))
	assert.Equal(t, "Cat 1/Elite", RiderCategory(4.2))
	assert.Equal(t, "Cat 2", RiderCategory(3.5))
	assert.Equal(t, "Cat 3", RiderCategory(3.33))
	assert.Equal(t, "Cat 4/5", RiderCategory(2.5))
	assert.Equal(t, "Beginner", RiderCategory(1.9))
}

func TestPowerToWeight(t *testing.T) {
	wkg, err := PowerToWeight(250, 75)
	require.NoError(t, err)
	assert.InDelta(t, 3.333, wkg, 1e-3)

	_, err = PowerToWeight(250, 0)
	assert.ErrorIs(t, err, ErrDivisionUndefined)
}
