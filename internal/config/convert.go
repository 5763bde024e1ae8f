package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lowaak/bike-calculator/internal/physics"
	"github.com/lowaak/bike-calculator/internal/presets"
	"github.com/lowaak/bike-calculator/internal/ride"
	"github.com/lowaak/bike-calculator/internal/units"
)

// Validate rejects settings the calculator cannot use, before any conversion
func (s *Settings) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{s.RiderWeight > 0, fmt.Sprintf("rider weight must be positive, got %v", s.RiderWeight)},
		{s.GearWeight >= 0, fmt.Sprintf("gear weight must not be negative, got %v", s.GearWeight)},
		{s.BikeWeight >= 0, fmt.Sprintf("bike weight must not be negative, got %v", s.BikeWeight)},
		{s.EfficiencyPct > 0 && s.EfficiencyPct <= 100, fmt.Sprintf("drivetrain efficiency must be in (0,100] percent, got %v", s.EfficiencyPct)},
		{s.FTP >= 0, fmt.Sprintf("FTP must not be negative, got %v", s.FTP)},
		{s.Distance > 0, fmt.Sprintf("distance must be positive, got %v", s.Distance)},
		{s.Temperature > physics.AbsoluteZeroCelsius, fmt.Sprintf("temperature %v°C is at or below absolute zero", s.Temperature)},
		{s.CdA >= 0, fmt.Sprintf("CdA override must not be negative, got %v", s.CdA)},
		{s.Crr >= 0, fmt.Sprintf("Crr override must not be negative, got %v", s.Crr)},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", physics.ErrInvalidConfiguration, c.msg)
		}
	}

	for _, v := range []float64{s.RiderWeight, s.GearWeight, s.BikeWeight, s.EfficiencyPct, s.FTP,
		s.Distance, s.Climb, s.Wind, s.Temperature, s.Altitude, s.CdA, s.Crr, s.Power, s.Speed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: settings contain a non-finite number", physics.ErrInvalidConfiguration)
		}
	}

	if _, err := units.ParseSystem(s.Units); err != nil {
		return err
	}
	if _, err := ride.ParseMode(s.Mode); err != nil {
		return err
	}
	if s.Event != "" {
		if _, err := ride.ParseEventType(s.Event); err != nil {
			return err
		}
	}
	return nil
}

// System returns the parsed unit system
func (s *Settings) System() units.System {
	system, _ := units.ParseSystem(s.Units)
	return system
}

// RiderWeightKg converts the rider weight to kilograms
func (s *Settings) RiderWeightKg() float64 {
	return s.System().WeightToKg(s.RiderWeight)
}

// DistanceMeters converts the distance to meters
func (s *Settings) DistanceMeters() float64 {
	return s.System().DistanceToMeters(s.Distance)
}

// RideConfiguration converts the settings to the SI configuration the force
// model works with
func (s *Settings) RideConfiguration() (physics.RideConfiguration, error) {
	if err := s.Validate(); err != nil {
		return physics.RideConfiguration{}, err
	}
	system := s.System()

	cda, err := presets.DragArea(s.Position, s.CdA)
	if err != nil {
		return physics.RideConfiguration{}, err
	}
	crr, err := presets.RollingResistance(s.Tire, s.Crr)
	if err != nil {
		return physics.RideConfiguration{}, err
	}
	rho, err := physics.AirDensityChecked(s.Altitude, s.Temperature)
	if err != nil {
		return physics.RideConfiguration{}, err
	}

	cfg := physics.RideConfiguration{
		TotalWeightKg:        system.WeightToKg(s.RiderWeight + s.GearWeight + s.BikeWeight),
		GradePercent:         physics.AverageGrade(system.ElevationToMeters(s.Climb), system.DistanceToMeters(s.Distance)),
		DragArea:             cda,
		RollingResistance:    crr,
		WindSpeedMs:          system.SpeedToMs(s.Wind),
		AirDensity:           rho,
		DrivetrainEfficiency: s.EfficiencyPct / 100,
	}
	if err := cfg.Validate(); err != nil {
		return physics.RideConfiguration{}, err
	}
	return cfg, nil
}

// Request builds the orchestrator request for the configured mode
func (s *Settings) Request() (ride.Request, error) {
	cfg, err := s.RideConfiguration()
	if err != nil {
		return ride.Request{}, err
	}
	mode, _ := ride.ParseMode(s.Mode)

	req := ride.Request{
		Mode:           mode,
		Config:         cfg,
		DistanceMeters: s.DistanceMeters(),
		FTPWatts:       s.FTP,
		RiderWeightKg:  s.RiderWeightKg(),
	}
	switch mode {
	case ride.PowerGiven:
		req.TargetPowerWatts = s.Power
	case ride.SpeedGiven:
		req.TargetSpeedMs = s.System().SpeedToMs(s.Speed)
	case ride.TimeGiven:
		d, err := ParseFinishTime(s.Time)
		if err != nil {
			return ride.Request{}, err
		}
		req.TargetDuration = d
	}
	return req, nil
}

// RaceRequest builds a race prediction request; Event must be set
func (s *Settings) RaceRequest() (ride.RaceRequest, error) {
	cfg, err := s.RideConfiguration()
	if err != nil {
		return ride.RaceRequest{}, err
	}
	event, err := ride.ParseEventType(s.Event)
	if err != nil {
		return ride.RaceRequest{}, err
	}
	return ride.RaceRequest{
		Event:          event,
		FTPWatts:       s.FTP,
		RiderWeightKg:  s.RiderWeightKg(),
		Config:         cfg,
		DistanceMeters: s.DistanceMeters(),
	}, nil
}

// maxFinishSeconds is the longest finish time a time.Duration can hold
const maxFinishSeconds = math.MaxInt64 / int64(time.Second)

// ParseFinishTime accepts H:MM:SS, MM:SS or a Go duration such as 1h30m.
// Minutes and seconds after the leading field must be below 60, and the
// result must be positive.
func ParseFinishTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: finish time is empty", physics.ErrInvalidConfiguration)
	}

	var d time.Duration
	if !strings.Contains(s, ":") {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid finish time %q: %v", physics.ErrInvalidConfiguration, s, err)
		}
		d = parsed
	} else {
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("%w: invalid finish time %q: too many fields", physics.ErrInvalidConfiguration, s)
		}
		var total int64
		for i, p := range parts {
			n, err := strconv.ParseInt(p, 10, 64)
			if err != nil || n < 0 {
				return 0, fmt.Errorf("%w: invalid finish time %q: bad field %q", physics.ErrInvalidConfiguration, s, p)
			}
			if i > 0 && n >= 60 {
				return 0, fmt.Errorf("%w: invalid finish time %q: field %q must be below 60", physics.ErrInvalidConfiguration, s, p)
			}
			if n > maxFinishSeconds || total > (maxFinishSeconds-n)/60 {
				return 0, fmt.Errorf("%w: finish time %q is out of range", physics.ErrInvalidConfiguration, s)
			}
			total = total*60 + n
		}
		d = time.Duration(total) * time.Second
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: finish time %q must be positive", physics.ErrInvalidConfiguration, s)
	}
	return d, nil
}
