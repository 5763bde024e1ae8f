package physics

import "math"

// Bound tells whether a solved speed is saturated at the search interval
type Bound int

const (
	BoundNone  Bound = iota // converged inside the interval
	BoundLower              // true speed is at or below SolverMinSpeedMs
	BoundUpper              // true speed is at or above SolverMaxSpeedMs
)

func (b Bound) String() string {
	switch b {
	case BoundLower:
		return "below minimum"
	case BoundUpper:
		return "above maximum"
	default:
		return "in range"
	}
}

// SolveResult is the output of SpeedFromPower
type SolveResult struct {
	SpeedMs    float64
	Iterations int
	Bound      Bound
}

// OutOfRange reports whether the speed is a saturated boundary value
func (r SolveResult) OutOfRange() bool {
	return r.Bound != BoundNone
}

// SpeedFromPower finds the speed at which the power needed at the wheel
// equals wheelPowerWatts. The caller applies drivetrain losses before calling;
// the force model is evaluated at 100% efficiency here.
//
// Bisection runs a fixed SolverIterations times over
// [SolverMinSpeedMs, SolverMaxSpeedMs]. A root outside the interval yields the
// nearest bound with Bound set.
func SpeedFromPower(wheelPowerWatts float64, cfg RideConfiguration) SolveResult {
	atWheel := cfg.WithEfficiency(1)

	low, high := SolverMinSpeedMs, SolverMaxSpeedMs
	for i := 0; i < SolverIterations; i++ {
		mid := (low + high) / 2
		if RequiredPower(mid, atWheel).PowerWatts > wheelPowerWatts {
			high = mid
		} else {
			low = mid
		}
	}

	result := SolveResult{
		SpeedMs:    (low + high) / 2,
		Iterations: SolverIterations,
	}
	switch {
	case math.Abs(result.SpeedMs-SolverMinSpeedMs) < SolverTolerance:
		result.Bound = BoundLower
	case math.Abs(SolverMaxSpeedMs-result.SpeedMs) < SolverTolerance:
		result.Bound = BoundUpper
	}
	return result
}
