package ride

import (
	"fmt"
	"math"
	"time"

	"github.com/lowaak/bike-calculator/internal/metrics"
	"github.com/lowaak/bike-calculator/internal/physics"
)

// Request is one fully specified calculation. All values are SI.
type Request struct {
	Mode           Mode
	Config         physics.RideConfiguration
	DistanceMeters float64
	FTPWatts       float64 // 0 leaves training metrics unavailable
	RiderWeightKg  float64 // 0 leaves power-to-weight unavailable

	TargetPowerWatts float64       // PowerGiven
	TargetSpeedMs    float64       // SpeedGiven
	TargetDuration   time.Duration // TimeGiven
}

// Result is the consistent outcome of a calculation
type Result struct {
	Mode           Mode                   `json:"-" yaml:"-"`
	ModeName       string                 `json:"mode" yaml:"mode"`
	PowerWatts     float64                `json:"power_watts" yaml:"power_watts"`
	SpeedMs        float64                `json:"speed_ms" yaml:"speed_ms"`
	DistanceMeters float64                `json:"distance_m" yaml:"distance_m"`
	Duration       time.Duration          `json:"-" yaml:"-"`
	DurationSecs   float64                `json:"duration_s" yaml:"duration_s"`
	FinishTime     string                 `json:"finish_time" yaml:"finish_time"`
	Forces         physics.ForceBreakdown `json:"forces" yaml:"forces"`
	Distribution   *physics.PowerShare    `json:"power_distribution,omitempty" yaml:"power_distribution,omitempty"`
	WattsPerKg     *float64               `json:"watts_per_kg,omitempty" yaml:"watts_per_kg,omitempty"`

	// Training is nil when FTP is not positive
	Training   *metrics.TrainingMetrics `json:"training,omitempty" yaml:"training,omitempty"`
	Difficulty string                   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Recovery   string                   `json:"recovery,omitempty" yaml:"recovery,omitempty"`

	SolverBound physics.Bound `json:"-" yaml:"-"`
	OutOfRange  bool          `json:"out_of_range" yaml:"out_of_range"`
	Warnings    []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Solve runs the calculation selected by req.Mode
func Solve(req Request) (*Result, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(req.DistanceMeters) || req.DistanceMeters <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive, got %v m", metrics.ErrDivisionUndefined, req.DistanceMeters)
	}

	var result *Result
	var err error
	switch req.Mode {
	case PowerGiven:
		result, err = solveForSpeed(req)
	case SpeedGiven:
		result, err = solveForPower(req, req.TargetSpeedMs)
	case TimeGiven:
		secs := req.TargetDuration.Seconds()
		if secs <= 0 {
			return nil, fmt.Errorf("%w: finish time must be positive, got %s", metrics.ErrDivisionUndefined, req.TargetDuration)
		}
		result, err = solveForPower(req, req.DistanceMeters/secs)
	default:
		return nil, fmt.Errorf("unknown target mode: %d", req.Mode)
	}
	if err != nil {
		return nil, err
	}

	result.Mode = req.Mode
	result.ModeName = req.Mode.String()
	result.DistanceMeters = req.DistanceMeters
	result.DurationSecs = result.Duration.Seconds()
	result.FinishTime = FormatDuration(result.Duration)
	result.addDerived(req)
	return result, nil
}

func solveForSpeed(req Request) (*Result, error) {
	if !isFinite(req.TargetPowerWatts) {
		return nil, fmt.Errorf("%w: target power is not finite", metrics.ErrInvalidInput)
	}
	wheel := req.TargetPowerWatts * req.Config.DrivetrainEfficiency
	solved := physics.SpeedFromPower(wheel, req.Config)
	atSpeed := physics.RequiredPower(solved.SpeedMs, req.Config)

	result := &Result{
		PowerWatts:  req.TargetPowerWatts,
		SpeedMs:     solved.SpeedMs,
		Duration:    secondsToDuration(req.DistanceMeters / solved.SpeedMs),
		Forces:      atSpeed.Forces,
		SolverBound: solved.Bound,
		OutOfRange:  solved.OutOfRange(),
	}
	if solved.OutOfRange() {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"solved speed %.2f km/h is %s of the %.1f-%.1f km/h search range; the true speed lies outside it",
			solved.SpeedMs*physics.MetersPerSecToKmh, solved.Bound,
			physics.SolverMinSpeedMs*physics.MetersPerSecToKmh, physics.SolverMaxSpeedMs*physics.MetersPerSecToKmh))
	}
	return result, nil
}

func solveForPower(req Request, speedMs float64) (*Result, error) {
	if !isFinite(speedMs) || speedMs <= 0 {
		return nil, fmt.Errorf("%w: speed must be positive, got %v m/s", metrics.ErrDivisionUndefined, speedMs)
	}
	p := physics.RequiredPower(speedMs, req.Config)
	result := &Result{
		PowerWatts: p.PowerWatts,
		SpeedMs:    speedMs,
		Duration:   secondsToDuration(req.DistanceMeters / speedMs),
		Forces:     p.Forces,
	}
	if p.PowerWatts < 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"required power is negative (%.1f W): gravity and wind assistance exceed resistance at this speed", p.PowerWatts))
	}
	return result, nil
}

func (r *Result) addDerived(req Request) {
	if share, ok := physics.Distribution(physics.PowerResult{PowerWatts: r.PowerWatts, SpeedMs: r.SpeedMs, Forces: r.Forces}); ok {
		r.Distribution = &share
	}

	if wkg, err := metrics.PowerToWeight(r.PowerWatts, req.RiderWeightKg); err == nil {
		r.WattsPerKg = &wkg
	}

	training, err := metrics.Classify(r.PowerWatts, r.Duration.Hours(), req.FTPWatts)
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("training metrics unavailable: %v", err))
		return
	}
	r.Training = &training
	difficulty := metrics.DifficultyForTSS(training.TrainingStressScore)
	r.Difficulty = difficulty.DisplayName
	r.Recovery = difficulty.Recovery
}

// FormatDuration renders d as H:MM:SS, rounded to the nearest second
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func secondsToDuration(secs float64) time.Duration {
	if secs > math.MaxInt64/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(math.Round(secs * float64(time.Second)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
