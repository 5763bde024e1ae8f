package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerCurve_Samples(t *testing.T) {
	curve := PowerCurve(flatConfig())
	require.Len(t, curve, CurvePoints)
	assert.Equal(t, CurveMinSpeedKmh, curve[0].SpeedKmh)
	assert.InDelta(t, CurveMaxSpeedKmh, curve[len(curve)-1].SpeedKmh, 1e-9)
	assert.InDelta(t, 11.0, curve[1].SpeedKmh, 1e-9)

	for i := 1; i < len(curve); i++ {
		assert.Greater(t, curve[i].PowerWatts, curve[i-1].PowerWatts)
	}
}

func TestPowerCurveRange_Degenerate(t *testing.T) {
	assert.Nil(t, PowerCurveRange(flatConfig(), 10, 20, 0))
	single := PowerCurveRange(flatConfig(), 30, 40, 1)
	require.Len(t, single, 1)
	assert.InDelta(t, 144.33, single[0].PowerWatts, 0.5)
}

func TestDistribution(t *testing.T) {
	share, ok := Distribution(RequiredPower(30/3.6, flatConfig()))
	require.True(t, ok)
	assert.InDelta(t, 100, share.RollingPct+share.GradePct+share.AirPct, 1e-9)
	assert.Equal(t, 0.0, share.GradePct)
	assert.InDelta(t, 80.6, share.AirPct, 0.1)

	descent := flatConfig()
	descent.GradePercent = -10
	_, ok = Distribution(RequiredPower(5, descent))
	assert.False(t, ok)
}

func TestAverageGrade(t *testing.T) {
	assert.InDelta(t, 1.25, AverageGrade(500, 40000), 1e-12)
	assert.Equal(t, 0.0, AverageGrade(500, 0))
	assert.InDelta(t, -2.0, AverageGrade(-200, 10000), 1e-12)
}
