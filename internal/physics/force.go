package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when ride inputs are outside the range
// the force model is defined for.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RideConfiguration holds everything the force model needs besides speed.
// All values are SI.
type RideConfiguration struct {
	TotalWeightKg        float64 // rider + gear + bike
	GradePercent         float64 // negative on descents
	DragArea             float64 // CdA, m²
	RollingResistance    float64 // Crr
	WindSpeedMs          float64 // positive = headwind
	AirDensity           float64 // kg/m³
	DrivetrainEfficiency float64 // fraction in (0,1]
}

// Validate reports the first out-of-range field
func (c RideConfiguration) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"total weight", c.TotalWeightKg},
		{"grade", c.GradePercent},
		{"drag area", c.DragArea},
		{"rolling resistance", c.RollingResistance},
		{"wind speed", c.WindSpeedMs},
		{"air density", c.AirDensity},
		{"drivetrain efficiency", c.DrivetrainEfficiency},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfiguration, f.name)
		}
	}

	switch {
	case c.TotalWeightKg <= 0:
		return fmt.Errorf("%w: total weight must be positive, got %.3f kg", ErrInvalidConfiguration, c.TotalWeightKg)
	case c.DragArea <= 0:
		return fmt.Errorf("%w: drag area must be positive, got %.4f m²", ErrInvalidConfiguration, c.DragArea)
	case c.RollingResistance <= 0:
		return fmt.Errorf("%w: rolling resistance must be positive, got %.5f", ErrInvalidConfiguration, c.RollingResistance)
	case c.AirDensity <= 0:
		return fmt.Errorf("%w: air density must be positive, got %.4f kg/m³", ErrInvalidConfiguration, c.AirDensity)
	case c.DrivetrainEfficiency <= 0 || c.DrivetrainEfficiency > 1:
		return fmt.Errorf("%w: drivetrain efficiency must be in (0,1], got %.4f", ErrInvalidConfiguration, c.DrivetrainEfficiency)
	}
	return nil
}

// WithEfficiency returns a copy of c with a different drivetrain efficiency
func (c RideConfiguration) WithEfficiency(efficiency float64) RideConfiguration {
	c.DrivetrainEfficiency = efficiency
	return c
}

// ForceBreakdown holds the resistive forces in newtons at one speed
type ForceBreakdown struct {
	Rolling float64 `json:"rolling_n" yaml:"rolling_n"`
	Grade   float64 `json:"grade_n" yaml:"grade_n"` // negative on descents
	Air     float64 `json:"air_n" yaml:"air_n"`
}

// Total returns the sum of all three components
func (f ForceBreakdown) Total() float64 {
	return f.Rolling + f.Grade + f.Air
}

// PowerResult is the rider power needed to hold SpeedMs, plus the forces
// that power works against
type PowerResult struct {
	PowerWatts float64        `json:"power_watts" yaml:"power_watts"`
	SpeedMs    float64        `json:"speed_ms" yaml:"speed_ms"`
	Forces     ForceBreakdown `json:"forces" yaml:"forces"`
}

// WheelPowerWatts is the power delivered at the wheel, before drivetrain losses
func (r PowerResult) WheelPowerWatts() float64 {
	return r.Forces.Total() * r.SpeedMs
}

// Forces evaluates the three resistive forces at speedMs
func Forces(speedMs float64, cfg RideConfiguration) ForceBreakdown {
	relativeSpeed := speedMs + cfg.WindSpeedMs
	theta := math.Atan(cfg.GradePercent / 100)
	weight := cfg.TotalWeightKg * Gravity

	return ForceBreakdown{
		Rolling: weight * cfg.RollingResistance * math.Cos(theta),
		Grade:   weight * math.Sin(theta),
		// squared: a tailwind faster than the bike still drags
		Air: 0.5 * cfg.DragArea * cfg.AirDensity * relativeSpeed * relativeSpeed,
	}
}

// RequiredPower returns the rider power needed to hold speedMs under cfg.
// The result may be negative when gravity or wind assistance exceeds
// resistance; it is never clamped.
func RequiredPower(speedMs float64, cfg RideConfiguration) PowerResult {
	forces := Forces(speedMs, cfg)
	return PowerResult{
		PowerWatts: forces.Total() * speedMs / cfg.DrivetrainEfficiency,
		SpeedMs:    speedMs,
		Forces:     forces,
	}
}
