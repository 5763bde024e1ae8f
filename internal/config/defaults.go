package config

import "github.com/lowaak/bike-calculator/internal/presets"

// Default ride inputs
const (
	DefaultRiderWeightKg = 75.0
	DefaultGearWeightKg  = 1.5
	DefaultBikeWeightKg  = 8.0
	DefaultEfficiencyPct = 97.5
	DefaultFTP           = 250.0
	DefaultDistanceKm    = 40.0
	DefaultClimbM        = 500.0
	DefaultTemperatureC  = 20.0
	DefaultAltitudeM     = 100.0
	DefaultPowerWatts    = 200.0
	DefaultSpeedKmh      = 30.0
	DefaultTime          = "1:30:00"
	DefaultWorkoutHours  = 1.5
)

// Defaults returns the settings used when nothing else is configured
func Defaults() Settings {
	return Settings{
		Units:         "metric",
		RiderWeight:   DefaultRiderWeightKg,
		GearWeight:    DefaultGearWeightKg,
		BikeWeight:    DefaultBikeWeightKg,
		EfficiencyPct: DefaultEfficiencyPct,
		FTP:           DefaultFTP,
		Distance:      DefaultDistanceKm,
		Climb:         DefaultClimbM,
		Temperature:   DefaultTemperatureC,
		Altitude:      DefaultAltitudeM,
		Position:      presets.DefaultPosition,
		Tire:          presets.DefaultTire,
		Mode:          "power",
		Power:         DefaultPowerWatts,
		Speed:         DefaultSpeedKmh,
		Time:          DefaultTime,
		Output:        "text",
		PlannedHours:  DefaultWorkoutHours,
		ActualHours:   DefaultWorkoutHours,
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}
