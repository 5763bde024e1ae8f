package metrics

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionUndefined is returned when a ratio would divide by a
// non-positive base, such as an FTP of zero
var ErrDivisionUndefined = errors.New("division undefined")

// ErrInvalidInput is returned for negative durations and non-finite values
var ErrInvalidInput = errors.New("invalid input")

// TrainingMetrics is the load summary of a steady effort
type TrainingMetrics struct {
	IntensityFactor     float64 `json:"intensity_factor" yaml:"intensity_factor"`
	TrainingStressScore float64 `json:"training_stress_score" yaml:"training_stress_score"`
	Zone                Zone    `json:"zone" yaml:"zone"`
	ZoneName            string  `json:"zone_name" yaml:"zone_name"`
}

// Classify computes intensity factor, TSS and zone for a steady effort of
// powerWatts held for durationHours. Power is used in place of normalized
// power since the effort is steady.
func Classify(powerWatts, durationHours, ftpWatts float64) (TrainingMetrics, error) {
	if math.IsNaN(ftpWatts) || math.IsInf(ftpWatts, 0) || ftpWatts <= 0 {
		return TrainingMetrics{}, fmt.Errorf("%w: FTP must be positive, got %v", ErrDivisionUndefined, ftpWatts)
	}
	if math.IsNaN(powerWatts) || math.IsInf(powerWatts, 0) {
		return TrainingMetrics{}, fmt.Errorf("%w: power is not finite", ErrInvalidInput)
	}
	if math.IsNaN(durationHours) || math.IsInf(durationHours, 0) || durationHours < 0 {
		return TrainingMetrics{}, fmt.Errorf("%w: duration must be a non-negative number of hours, got %v", ErrInvalidInput, durationHours)
	}

	intensity := powerWatts / ftpWatts
	zone := ZoneForIntensity(intensity)
	return TrainingMetrics{
		IntensityFactor:     intensity,
		TrainingStressScore: durationHours * intensity * intensity * 100,
		Zone:                zone,
		ZoneName:            zone.String(),
	}, nil
}

// ZoneForIntensity maps an intensity factor to its band. Each band includes
// its lower bound, so an IF of exactly 0.90 is Threshold.
func ZoneForIntensity(intensity float64) Zone {
	zone := ZoneRecovery
	for _, info := range AllZones {
		if intensity >= info.MinIF {
			zone = info.Zone
		}
	}
	return zone
}

// PlannedWorkout computes metrics for a planned steady session given as a
// percentage of FTP
func PlannedWorkout(intensityPercent, durationHours, ftpWatts float64) (TrainingMetrics, float64, error) {
	if math.IsNaN(intensityPercent) || intensityPercent < 0 {
		return TrainingMetrics{}, 0, fmt.Errorf("%w: intensity must be non-negative, got %v", ErrInvalidInput, intensityPercent)
	}
	power := intensityPercent / 100 * ftpWatts
	m, err := Classify(power, durationHours, ftpWatts)
	if err != nil {
		return TrainingMetrics{}, 0, err
	}
	return m, power, nil
}

// ActualEffort is the load summary of a completed ride described by its
// average and normalized power
type ActualEffort struct {
	AvgPowerWatts        float64         `json:"avg_power_watts" yaml:"avg_power_watts"`
	NormalizedPowerWatts float64         `json:"normalized_power_watts" yaml:"normalized_power_watts"`
	AvgPowerPct          float64         `json:"avg_power_pct" yaml:"avg_power_pct"`
	NormalizedPowerPct   float64         `json:"normalized_power_pct" yaml:"normalized_power_pct"`
	Training             TrainingMetrics `json:"training" yaml:"training"`
}

// ActualWorkout classifies a completed ride on its normalized power. Both
// powers are also reported as a percentage of FTP.
func ActualWorkout(avgPowerWatts, normalizedPowerWatts, durationHours, ftpWatts float64) (ActualEffort, error) {
	for _, p := range []float64{avgPowerWatts, normalizedPowerWatts} {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return ActualEffort{}, fmt.Errorf("%w: power must be a non-negative number of watts, got %v", ErrInvalidInput, p)
		}
	}
	m, err := Classify(normalizedPowerWatts, durationHours, ftpWatts)
	if err != nil {
		return ActualEffort{}, err
	}
	return ActualEffort{
		AvgPowerWatts:        avgPowerWatts,
		NormalizedPowerWatts: normalizedPowerWatts,
		AvgPowerPct:          avgPowerWatts / ftpWatts * 100,
		NormalizedPowerPct:   normalizedPowerWatts / ftpWatts * 100,
		Training:             m,
	}, nil
}
