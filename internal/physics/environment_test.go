package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirDensity_SeaLevelFreezing(t *testing.T) {
	assert.Equal(t, 1.225, AirDensity(0, 0))
}

func TestAirDensity_DecreasesWithAltitudeAndHeat(t *testing.T) {
	base := AirDensity(100, 20)
	assert.InDelta(t, 1.1272, base, 1e-4)
	assert.Less(t, AirDensity(2000, 20), base)
	assert.Less(t, AirDensity(100, 35), base)
	assert.Greater(t, AirDensity(100, -10), base)
}

func TestAirDensityChecked_RejectsAbsoluteZero(t *testing.T) {
	_, err := AirDensityChecked(0, -273)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = AirDensityChecked(0, -300)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = AirDensityChecked(math.NaN(), 10)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	rho, err := AirDensityChecked(0, -272.5)
	require.NoError(t, err)
	assert.Greater(t, rho, 0.0)
}
