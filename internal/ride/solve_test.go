package ride

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowaak/bike-calculator/internal/metrics"
	"github.com/lowaak/bike-calculator/internal/physics"
)

func testConfig() physics.RideConfiguration {
	return physics.RideConfiguration{
		TotalWeightKg:        83.5,
		GradePercent:         0,
		DragArea:             0.32,
		RollingResistance:    0.004,
		WindSpeedMs:          0,
		AirDensity:           1.225,
		DrivetrainEfficiency: 0.975,
	}
}

func TestSolve_SpeedGiven(t *testing.T) {
	result, err := Solve(Request{
		Mode:           SpeedGiven,
		Config:         testConfig(),
		DistanceMeters: 40000,
		FTPWatts:       250,
		RiderWeightKg:  75,
		TargetSpeedMs:  30 / 3.6,
	})
	require.NoError(t, err)

	assert.Equal(t, "speed", result.ModeName)
	assert.InDelta(t, 144.33, result.PowerWatts, 0.5)
	assert.Equal(t, "1:20:00", result.FinishTime)
	assert.InDelta(t, 4800, result.DurationSecs, 1e-6)
	assert.InDelta(t, result.Forces.Rolling+result.Forces.Grade+result.Forces.Air, result.Forces.Total(), 1e-12)

	require.NotNil(t, result.Training)
	assert.InDelta(t, 144.33/250, result.Training.IntensityFactor, 0.002)
	assert.Equal(t, metrics.ZoneEndurance, result.Training.Zone)
	assert.Equal(t, "Low", result.Difficulty)

	require.NotNil(t, result.WattsPerKg)
	assert.InDelta(t, 144.33/75, *result.WattsPerKg, 0.01)
	require.NotNil(t, result.Distribution)
	assert.False(t, result.OutOfRange)
	assert.Empty(t, result.Warnings)
}

func TestSolve_TimeGivenMatchesSpeedGiven(t *testing.T) {
	base := Request{
		Config:         testConfig(),
		DistanceMeters: 40000,
		FTPWatts:       250,
	}

	bySpeed := base
	bySpeed.Mode = SpeedGiven
	bySpeed.TargetSpeedMs = 40000.0 / 5400.0

	byTime := base
	byTime.Mode = TimeGiven
	byTime.TargetDuration = 90 * time.Minute

	a, err := Solve(bySpeed)
	require.NoError(t, err)
	b, err := Solve(byTime)
	require.NoError(t, err)

	assert.InDelta(t, a.PowerWatts, b.PowerWatts, 1e-9)
	assert.InDelta(t, a.SpeedMs, b.SpeedMs, 1e-12)
	assert.Equal(t, "1:30:00", b.FinishTime)
	assert.Equal(t, "time", b.ModeName)
}

func TestSolve_PowerGivenRoundTrips(t *testing.T) {
	cfg := testConfig()
	cfg.GradePercent = 1.25
	speed := 9.0
	power := physics.RequiredPower(speed, cfg).PowerWatts

	result, err := Solve(Request{
		Mode:             PowerGiven,
		Config:           cfg,
		DistanceMeters:   40000,
		FTPWatts:         250,
		TargetPowerWatts: power,
	})
	require.NoError(t, err)

	assert.InDelta(t, speed, result.SpeedMs, 1e-4)
	assert.Equal(t, power, result.PowerWatts)
	assert.InDelta(t, 40000/speed, result.DurationSecs, 0.01)
	assert.Greater(t, result.Forces.Grade, 0.0)
	assert.False(t, result.OutOfRange)
}

func TestSolve_PowerGivenOutOfRange(t *testing.T) {
	result, err := Solve(Request{
		Mode:             PowerGiven,
		Config:           testConfig(),
		DistanceMeters:   40000,
		FTPWatts:         250,
		TargetPowerWatts: 50000,
	})
	require.NoError(t, err)

	assert.True(t, result.OutOfRange)
	assert.Equal(t, physics.BoundUpper, result.SolverBound)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "above maximum")
}

func TestSolve_ZeroFTPLeavesTrainingUnavailable(t *testing.T) {
	result, err := Solve(Request{
		Mode:           SpeedGiven,
		Config:         testConfig(),
		DistanceMeters: 10000,
		TargetSpeedMs:  8,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Training)
	assert.Empty(t, result.Difficulty)
	assert.Nil(t, result.WattsPerKg)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "training metrics unavailable")
}

func TestSolve_NegativePowerOnDescent(t *testing.T) {
	cfg := testConfig()
	cfg.GradePercent = -8

	result, err := Solve(Request{
		Mode:           SpeedGiven,
		Config:         cfg,
		DistanceMeters: 5000,
		FTPWatts:       250,
		TargetSpeedMs:  8,
	})
	require.NoError(t, err)
	assert.Less(t, result.PowerWatts, 0.0)
	assert.Nil(t, result.Distribution)
	assert.Contains(t, result.Warnings[0], "negative")
}

func TestSolve_Errors(t *testing.T) {
	badConfig := testConfig()
	badConfig.DrivetrainEfficiency = 0

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"invalid config", Request{Mode: SpeedGiven, Config: badConfig, DistanceMeters: 1000, TargetSpeedMs: 8}, physics.ErrInvalidConfiguration},
		{"zero distance", Request{Mode: SpeedGiven, Config: testConfig(), TargetSpeedMs: 8}, metrics.ErrDivisionUndefined},
		{"zero speed", Request{Mode: SpeedGiven, Config: testConfig(), DistanceMeters: 1000}, metrics.ErrDivisionUndefined},
		{"zero time", Request{Mode: TimeGiven, Config: testConfig(), DistanceMeters: 1000}, metrics.ErrDivisionUndefined},
		{"NaN power", Request{Mode: PowerGiven, Config: testConfig(), DistanceMeters: 1000, TargetPowerWatts: math.NaN()}, metrics.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Solve(Request{Mode: Mode(9), Config: testConfig(), DistanceMeters: 1000})
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:00", FormatDuration(0))
	assert.Equal(t, "0:00:00", FormatDuration(-time.Second))
	assert.Equal(t, "1:30:00", FormatDuration(90*time.Minute))
	assert.Equal(t, "25:01:06", FormatDuration(25*time.Hour+65*time.Second+900*time.Millisecond))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Power ")
	require.NoError(t, err)
	assert.Equal(t, PowerGiven, m)

	_, err = ParseMode("cadence")
	assert.Error(t, err)
}
