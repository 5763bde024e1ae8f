package ride

import (
	"fmt"

	"github.com/lowaak/bike-calculator/internal/metrics"
	"github.com/lowaak/bike-calculator/internal/physics"
)

// RaceRequest describes a race to predict
type RaceRequest struct {
	Event          EventType
	FTPWatts       float64
	RiderWeightKg  float64
	Config         physics.RideConfiguration
	DistanceMeters float64
}

// Pacing is the suggested power for each part of the race
type Pacing struct {
	StartWatts  float64 `json:"start_watts" yaml:"start_watts"`
	MiddleWatts float64 `json:"middle_watts" yaml:"middle_watts"`
	FinishWatts float64 `json:"finish_watts" yaml:"finish_watts"`
}

// RacePrediction is the expected outcome of a race at sustainable power
type RacePrediction struct {
	Event                 string  `json:"event" yaml:"event"`
	FTPFraction           float64 `json:"ftp_fraction" yaml:"ftp_fraction"`
	SustainablePowerWatts float64 `json:"sustainable_power_watts" yaml:"sustainable_power_watts"`
	FTPWattsPerKg         float64 `json:"ftp_watts_per_kg" yaml:"ftp_watts_per_kg"`
	RiderCategory         string  `json:"rider_category" yaml:"rider_category"`
	Pacing                Pacing  `json:"pacing" yaml:"pacing"`
	Ride                  *Result `json:"ride" yaml:"ride"`
}

// PredictRace solves a power-given ride at the event's sustainable fraction
// of FTP
func PredictRace(req RaceRequest) (*RacePrediction, error) {
	info, ok := GetEventTypeInfo(req.Event)
	if !ok {
		return nil, fmt.Errorf("unknown event type: %d", req.Event)
	}
	if req.FTPWatts <= 0 {
		return nil, fmt.Errorf("%w: race prediction needs a positive FTP, got %v", metrics.ErrDivisionUndefined, req.FTPWatts)
	}
	wkg, err := metrics.PowerToWeight(req.FTPWatts, req.RiderWeightKg)
	if err != nil {
		return nil, err
	}

	sustainable := req.FTPWatts * info.FTPFraction
	result, err := Solve(Request{
		Mode:             PowerGiven,
		Config:           req.Config,
		DistanceMeters:   req.DistanceMeters,
		FTPWatts:         req.FTPWatts,
		RiderWeightKg:    req.RiderWeightKg,
		TargetPowerWatts: sustainable,
	})
	if err != nil {
		return nil, fmt.Errorf("race %s: %w", info.Key, err)
	}

	return &RacePrediction{
		Event:                 info.DisplayName,
		FTPFraction:           info.FTPFraction,
		SustainablePowerWatts: sustainable,
		FTPWattsPerKg:         wkg,
		RiderCategory:         metrics.RiderCategory(wkg),
		Pacing: Pacing{
			StartWatts:  sustainable * pacingStart,
			MiddleWatts: sustainable * pacingMiddle,
			FinishWatts: sustainable * pacingFinish,
		},
		Ride: result,
	}, nil
}
