package ride

import (
	"fmt"
	"log"

	"github.com/lowaak/bike-calculator/internal/physics"
)

// Calculator logs each calculation around the pure Solve and PredictRace
type Calculator struct {
	logger *log.Logger
}

// NewCalculator creates a new Calculator
func NewCalculator(logger *log.Logger) *Calculator {
	if logger == nil {
		panic("Calculator: logger cannot be nil")
	}
	return &Calculator{logger: logger}
}

// Solve runs one calculation and logs its outcome
func (c *Calculator) Solve(req Request) (*Result, error) {
	c.logger.Printf("Calculator: solve mode=%s distance=%.0fm grade=%.2f%% cda=%.3f crr=%.4f rho=%.4f",
		req.Mode, req.DistanceMeters, req.Config.GradePercent, req.Config.DragArea,
		req.Config.RollingResistance, req.Config.AirDensity)

	result, err := Solve(req)
	if err != nil {
		c.logger.Printf("Calculator: solve failed: %v", err)
		return nil, err
	}

	c.logger.Printf("Calculator: power=%.1fW speed=%.2fkm/h time=%s",
		result.PowerWatts, result.SpeedMs*physics.MetersPerSecToKmh, result.FinishTime)
	for _, w := range result.Warnings {
		c.logger.Printf("Calculator: warning: %s", w)
	}
	return result, nil
}

// PredictRace runs a race prediction and logs its outcome
func (c *Calculator) PredictRace(req RaceRequest) (*RacePrediction, error) {
	event := fmt.Sprintf("%d", int(req.Event))
	if info, ok := GetEventTypeInfo(req.Event); ok {
		event = info.Key
	}
	c.logger.Printf("Calculator: predict race event=%s ftp=%.0fW distance=%.0fm", event, req.FTPWatts, req.DistanceMeters)

	prediction, err := PredictRace(req)
	if err != nil {
		c.logger.Printf("Calculator: race prediction failed: %v", err)
		return nil, err
	}

	c.logger.Printf("Calculator: race power=%.0fW finish=%s category=%s",
		prediction.SustainablePowerWatts, prediction.Ride.FinishTime, prediction.RiderCategory)
	return prediction, nil
}
