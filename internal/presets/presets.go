package presets

import (
	"fmt"
	"strings"
)

// Position is a riding position with a typical CdA
type Position struct {
	Key         string
	DisplayName string
	DragArea    float64
}

// Tire is a tire class with a typical Crr
type Tire struct {
	Key               string
	DisplayName       string
	RollingResistance float64
}

// AllPositions lists riding positions from most upright to most aero
var AllPositions = []Position{
	{Key: "hoods-relaxed", DisplayName: "Hoods - Relaxed", DragArea: 0.400},
	{Key: "hoods-regular", DisplayName: "Hoods - Regular", DragArea: 0.350},
	{Key: "drops-regular", DisplayName: "Drops - Regular", DragArea: 0.320},
	{Key: "drops-tucked", DisplayName: "Drops - Tucked", DragArea: 0.300},
	{Key: "aero-bars", DisplayName: "Aero bars", DragArea: 0.270},
	{Key: "tt", DisplayName: "TT position", DragArea: 0.230},
	{Key: "tt-pro", DisplayName: "TT PRO position", DragArea: 0.190},
}

// AllTires lists tire classes from fastest to slowest rolling
var AllTires = []Tire{
	{Key: "fast-tt", DisplayName: "Fast TT tire", RollingResistance: 0.0025},
	{Key: "race", DisplayName: "Race tire", RollingResistance: 0.0033},
	{Key: "race-plus", DisplayName: "Race tire (0.0035)", RollingResistance: 0.0035},
	{Key: "training", DisplayName: "Training tire", RollingResistance: 0.0040},
	{Key: "gravel", DisplayName: "Gravel tire", RollingResistance: 0.0050},
	{Key: "mtb", DisplayName: "MTB tire", RollingResistance: 0.0070},
}

const (
	DefaultPosition = "hoods-relaxed"
	DefaultTire     = "fast-tt"
)

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

// GetPosition looks up a riding position by key
func GetPosition(key string) (Position, error) {
	k := normalizeKey(key)
	for _, p := range AllPositions {
		if p.Key == k {
			return p, nil
		}
	}
	return Position{}, fmt.Errorf("unknown position: %q", key)
}

// GetTire looks up a tire class by key
func GetTire(key string) (Tire, error) {
	k := normalizeKey(key)
	for _, t := range AllTires {
		if t.Key == k {
			return t, nil
		}
	}
	return Tire{}, fmt.Errorf("unknown tire: %q", key)
}

// DragArea resolves the CdA to use: override when positive, else the position's
func DragArea(positionKey string, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	p, err := GetPosition(positionKey)
	if err != nil {
		return 0, err
	}
	return p.DragArea, nil
}

// RollingResistance resolves the Crr to use: override when positive, else the tire's
func RollingResistance(tireKey string, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	t, err := GetTire(tireKey)
	if err != nil {
		return 0, err
	}
	return t.RollingResistance, nil
}
