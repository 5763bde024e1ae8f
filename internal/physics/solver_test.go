package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedFromPower_RoundTrip(t *testing.T) {
	climb := flatConfig()
	climb.GradePercent = 6
	windy := flatConfig()
	windy.WindSpeedMs = 4

	for _, cfg := range []RideConfiguration{flatConfig(), climb, windy} {
		for _, speed := range []float64{0.5, 2, 5, 8.3333, 12, 18, 25} {
			wheel := RequiredPower(speed, cfg).PowerWatts * cfg.DrivetrainEfficiency
			result := SpeedFromPower(wheel, cfg)
			assert.InDelta(t, speed, result.SpeedMs, 1e-4, "speed %.4f grade %.1f", speed, cfg.GradePercent)
			assert.False(t, result.OutOfRange())
			assert.Equal(t, SolverIterations, result.Iterations)
		}
	}
}

func TestSpeedFromPower_SaturatesHigh(t *testing.T) {
	result := SpeedFromPower(100000, flatConfig())
	assert.Equal(t, BoundUpper, result.Bound)
	assert.True(t, result.OutOfRange())
	assert.InDelta(t, SolverMaxSpeedMs, result.SpeedMs, SolverTolerance)
}

func TestSpeedFromPower_SaturatesLow(t *testing.T) {
	climb := flatConfig()
	climb.GradePercent = 25

	result := SpeedFromPower(0, climb)
	assert.Equal(t, BoundLower, result.Bound)
	assert.InDelta(t, SolverMinSpeedMs, result.SpeedMs, SolverTolerance)
}

func TestSpeedFromPower_IgnoresEfficiency(t *testing.T) {
	a := flatConfig()
	b := flatConfig()
	b.DrivetrainEfficiency = 0.5

	assert.Equal(t, SpeedFromPower(150, a).SpeedMs, SpeedFromPower(150, b).SpeedMs)
}

func TestBound_String(t *testing.T) {
	assert.Equal(t, "in range", BoundNone.String())
	assert.Equal(t, "below minimum", BoundLower.String())
	assert.Equal(t, "above maximum", BoundUpper.String())
}
