package units

import (
	"fmt"
	"strings"
)

// System selects the unit system used at the input/output boundary
type System int

const (
	Metric System = iota
	Imperial
)

const (
	PoundsPerKg   = 2.20462
	KmPerMile     = 1.60934
	MetersPerFoot = 0.3048
	KmhPerMs      = 3.6
)

// ParseSystem accepts "metric" or "imperial", case-insensitively
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	default:
		return Metric, fmt.Errorf("unknown unit system: %q", s)
	}
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// WeightLabel, DistanceLabel, ElevationLabel and SpeedLabel name the user-facing units
func (s System) WeightLabel() string {
	if s == Imperial {
		return "lbs"
	}
	return "kg"
}

func (s System) DistanceLabel() string {
	if s == Imperial {
		return "miles"
	}
	return "km"
}

func (s System) ElevationLabel() string {
	if s == Imperial {
		return "ft"
	}
	return "m"
}

func (s System) SpeedLabel() string {
	if s == Imperial {
		return "mph"
	}
	return "km/h"
}

// WeightToKg converts a user weight (kg or lbs) to kilograms
func (s System) WeightToKg(v float64) float64 {
	if s == Imperial {
		return v / PoundsPerKg
	}
	return v
}

// KgToWeight converts kilograms to the user's weight unit
func (s System) KgToWeight(kg float64) float64 {
	if s == Imperial {
		return kg * PoundsPerKg
	}
	return kg
}

// DistanceToMeters converts km or miles to meters
func (s System) DistanceToMeters(v float64) float64 {
	if s == Imperial {
		return v * KmPerMile * 1000
	}
	return v * 1000
}

// MetersToDistance converts meters to km or miles
func (s System) MetersToDistance(m float64) float64 {
	if s == Imperial {
		return m / 1000 / KmPerMile
	}
	return m / 1000
}

// ElevationToMeters converts m or ft to meters
func (s System) ElevationToMeters(v float64) float64 {
	if s == Imperial {
		return v * MetersPerFoot
	}
	return v
}

// SpeedToMs converts km/h or mph to m/s
func (s System) SpeedToMs(v float64) float64 {
	if s == Imperial {
		return v * KmPerMile / KmhPerMs
	}
	return v / KmhPerMs
}

// MsToSpeed converts m/s to km/h or mph
func (s System) MsToSpeed(ms float64) float64 {
	if s == Imperial {
		return ms * KmhPerMs / KmPerMile
	}
	return ms * KmhPerMs
}
