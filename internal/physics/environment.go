package physics

import (
	"fmt"
	"math"
)

// AirDensity returns the air density in kg/m³ at the given altitude and
// temperature. The altitude term is an exponential approximation of the
// barometric formula; the temperature term scales by 273/(273+t).
// Callers must reject temperatures at or below absolute zero first.
func AirDensity(altitudeMeters, temperatureCelsius float64) float64 {
	return SeaLevelAirDensity *
		math.Exp(-altitudeMeters/AirDensityScaleMeter) *
		(ReferenceKelvin / (ReferenceKelvin + temperatureCelsius))
}

// ValidateTemperature rejects temperatures at or below absolute zero
func ValidateTemperature(temperatureCelsius float64) error {
	if math.IsNaN(temperatureCelsius) || math.IsInf(temperatureCelsius, 0) {
		return fmt.Errorf("%w: temperature is not finite", ErrInvalidConfiguration)
	}
	if temperatureCelsius <= AbsoluteZeroCelsius {
		return fmt.Errorf("%w: temperature %.2f°C is at or below absolute zero", ErrInvalidConfiguration, temperatureCelsius)
	}
	return nil
}

// AirDensityChecked validates the temperature before computing the density
func AirDensityChecked(altitudeMeters, temperatureCelsius float64) (float64, error) {
	if err := ValidateTemperature(temperatureCelsius); err != nil {
		return 0, err
	}
	if math.IsNaN(altitudeMeters) || math.IsInf(altitudeMeters, 0) {
		return 0, fmt.Errorf("%w: altitude is not finite", ErrInvalidConfiguration)
	}
	return AirDensity(altitudeMeters, temperatureCelsius), nil
}
