package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lowaak/bike-calculator/internal/batch"
	"github.com/lowaak/bike-calculator/internal/metrics"
	"github.com/lowaak/bike-calculator/internal/physics"
	"github.com/lowaak/bike-calculator/internal/ride"
	"github.com/lowaak/bike-calculator/internal/units"
)

// Format is an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "", "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}

// Report is everything a single run can print. Empty parts are omitted.
// The unit system only applies to text; JSON and YAML are always SI, with
// the unit in each field name.
type Report struct {
	Result  *ride.Result         `json:"result,omitempty" yaml:"result,omitempty"`
	Race    *ride.RacePrediction `json:"race,omitempty" yaml:"race,omitempty"`
	Batch   []batch.Outcome      `json:"batch,omitempty" yaml:"batch,omitempty"`
	Curve   []physics.CurvePoint `json:"power_curve,omitempty" yaml:"power_curve,omitempty"`
	Zones   []metrics.PowerZone  `json:"power_zones,omitempty" yaml:"power_zones,omitempty"`
	Planned *Planned             `json:"planned_workout,omitempty" yaml:"planned_workout,omitempty"`
	Actual  *Actual              `json:"actual_workout,omitempty" yaml:"actual_workout,omitempty"`
	system  units.System
}

// Planned is the load summary of a planned steady workout
type Planned struct {
	IntensityPct float64                 `json:"intensity_pct" yaml:"intensity_pct"`
	Hours        float64                 `json:"hours" yaml:"hours"`
	PowerWatts   float64                 `json:"power_watts" yaml:"power_watts"`
	Training     metrics.TrainingMetrics `json:"training" yaml:"training"`
	Difficulty   string                  `json:"difficulty" yaml:"difficulty"`
	Recovery     string                  `json:"recovery" yaml:"recovery"`
}

// Actual is the load summary of a completed workout
type Actual struct {
	Hours      float64              `json:"hours" yaml:"hours"`
	Effort     metrics.ActualEffort `json:"effort" yaml:"effort"`
	Difficulty string               `json:"difficulty" yaml:"difficulty"`
	Recovery   string               `json:"recovery" yaml:"recovery"`
}

// New creates an empty report whose text is rendered in system
func New(system units.System) *Report {
	return &Report{system: system}
}

// Write encodes the report to w
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.writeText(w)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := &textWriter{w: w}
	if r.Result != nil {
		tw.result(r.Result, r.system)
	}
	if r.Race != nil {
		tw.race(r.Race, r.system)
	}
	for i, o := range r.Batch {
		if i > 0 {
			tw.line("")
		}
		tw.line("== %s", o.Name)
		switch {
		case o.Err != nil:
			tw.line("error:               %v", o.Err)
		case o.Race != nil:
			tw.race(o.Race, o.Units)
		case o.Result != nil:
			tw.result(o.Result, o.Units)
		}
	}
	if len(r.Curve) > 0 {
		tw.curve(r.Curve, r.system)
	}
	if len(r.Zones) > 0 {
		tw.zones(r.Zones)
	}
	if r.Planned != nil {
		tw.planned(r.Planned)
	}
	if r.Actual != nil {
		tw.actual(r.Actual)
	}
	return tw.err
}

type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *textWriter) result(res *ride.Result, system units.System) {
	t.line("Required power:      %.1f W", res.PowerWatts)
	if res.WattsPerKg != nil {
		t.line("Power to weight:     %.2f W/kg", *res.WattsPerKg)
	}
	t.line("Average speed:       %.2f %s", system.MsToSpeed(res.SpeedMs), system.SpeedLabel())
	t.line("Distance:            %.2f %s", system.MetersToDistance(res.DistanceMeters), system.DistanceLabel())
	t.line("Finish time:         %s", res.FinishTime)
	t.line("Forces:              rolling %.2f N, grade %.2f N, air %.2f N", res.Forces.Rolling, res.Forces.Grade, res.Forces.Air)
	if res.Distribution != nil {
		t.line("Power distribution:  rolling %.1f%%, grade %.1f%%, air %.1f%%",
			res.Distribution.RollingPct, res.Distribution.GradePct, res.Distribution.AirPct)
	}
	if res.Training != nil {
		t.line("Intensity factor:    %.2f IF", res.Training.IntensityFactor)
		t.line("Training stress:     %.1f TSS", res.Training.TrainingStressScore)
		t.line("Classification:      %s", res.Training.ZoneName)
		t.line("Difficulty:          %s (recovery %s)", res.Difficulty, res.Recovery)
	}
	for _, w := range res.Warnings {
		t.line("warning:             %s", w)
	}
}

func (t *textWriter) race(p *ride.RacePrediction, system units.System) {
	t.line("Event:               %s", p.Event)
	t.line("Sustainable power:   %.0f W (%.0f%% of FTP)", p.SustainablePowerWatts, p.FTPFraction*100)
	t.line("FTP to weight:       %.2f W/kg (%s)", p.FTPWattsPerKg, p.RiderCategory)
	t.line("Pacing:              start %.0f W, middle %.0f W, finish %.0f W",
		p.Pacing.StartWatts, p.Pacing.MiddleWatts, p.Pacing.FinishWatts)
	if p.Ride != nil {
		t.result(p.Ride, system)
	}
}

func (t *textWriter) curve(curve []physics.CurvePoint, system units.System) {
	t.line("")
	t.line("%-12s %s", "Speed ("+system.SpeedLabel()+")", "Power (W)")
	for _, p := range curve {
		t.line("%-12.1f %.1f", system.MsToSpeed(p.SpeedKmh/physics.MetersPerSecToKmh), p.PowerWatts)
	}
}

func (t *textWriter) zones(zones []metrics.PowerZone) {
	t.line("")
	t.line("%-6s %-16s %-16s %s", "Zone", "Name", "Power (W)", "Typical duration")
	for _, z := range zones {
		var watts string
		switch {
		case z.MaxWatts == 0:
			watts = fmt.Sprintf("> %d", int(z.MinWatts))
		case z.MinWatts == 0:
			watts = fmt.Sprintf("< %d", int(z.MaxWatts))
		default:
			watts = fmt.Sprintf("%d - %d", int(z.MinWatts), int(z.MaxWatts))
		}
		t.line("%-6d %-16s %-16s %s", z.Number, z.Name, watts, z.Typical)
	}
}

func (t *textWriter) planned(p *Planned) {
	t.line("")
	t.line("Planned workout:     %.0f%% of FTP for %.2f h (%.0f W)", p.IntensityPct, p.Hours, p.PowerWatts)
	t.line("Intensity factor:    %.2f IF (%s)", p.Training.IntensityFactor, p.Training.ZoneName)
	t.line("Training stress:     %.1f TSS", p.Training.TrainingStressScore)
	t.line("Difficulty:          %s (recovery %s)", p.Difficulty, p.Recovery)
}

func (t *textWriter) actual(a *Actual) {
	e := a.Effort
	t.line("")
	t.line("Actual workout:      %.2f h, average %.0f W (%.0f%% of FTP), normalized %.0f W (%.0f%% of FTP)",
		a.Hours, e.AvgPowerWatts, e.AvgPowerPct, e.NormalizedPowerWatts, e.NormalizedPowerPct)
	t.line("Intensity factor:    %.2f IF (%s)", e.Training.IntensityFactor, e.Training.ZoneName)
	t.line("Training stress:     %.1f TSS", e.Training.TrainingStressScore)
	t.line("Difficulty:          %s (recovery %s)", a.Difficulty, a.Recovery)
}
