package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/lowaak/bike-calculator/internal/batch"
	"github.com/lowaak/bike-calculator/internal/config"
	"github.com/lowaak/bike-calculator/internal/logging"
	"github.com/lowaak/bike-calculator/internal/metrics"
	"github.com/lowaak/bike-calculator/internal/physics"
	"github.com/lowaak/bike-calculator/internal/report"
	"github.com/lowaak/bike-calculator/internal/ride"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := config.NewFlagSet("bike-calculator")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bike-calculator [--mode power|speed|time] [--power 200] [--event time-trial] [--scenarios batch.yaml]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		return 2
	}

	settings, err := config.LoadFlags(fs)
	if err != nil {
		fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
		return 2
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
		return 2
	}
	format, err := report.ParseFormat(settings.Output)
	if err != nil {
		fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
		return 2
	}

	logger, closer := logging.New(logging.Options{
		File:       settings.LogFile,
		MaxSizeMB:  settings.LogMaxSizeMB,
		MaxBackups: settings.LogMaxBackups,
		MaxAgeDays: settings.LogMaxAgeDays,
		Compress:   settings.LogCompress,
		Verbose:    settings.Verbose,
	})
	defer closer.Close()
	logger.Printf("Main: starting with units=%s mode=%s output=%s", settings.Units, settings.Mode, format)

	calculator := ride.NewCalculator(logger)
	rep := report.New(settings.System())

	switch {
	case settings.Scenarios != "":
		scenarios, err := batch.LoadScenarios(settings.Scenarios, *settings)
		if err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}
		rep.Batch = batch.NewRunner(calculator, logger).Run(ctx, scenarios)

	case settings.Event != "":
		req, err := settings.RaceRequest()
		if err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}
		if rep.Race, err = calculator.PredictRace(req); err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}

	default:
		req, err := settings.Request()
		if err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}
		if rep.Result, err = calculator.Solve(req); err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}
	}

	if settings.Curve {
		cfg, err := settings.RideConfiguration()
		if err != nil {
			fmt.Fprintf(stderr, "bike-calculator failed: %v\n", err)
			return 1
		}
		rep.Curve = physics.PowerCurve(cfg)
	}
	if settings.Zones {
		zones, err := metrics.PowerZones(settings.FTP)
		if err != nil {
			warn(logger, stderr, "power zones unavailable: %v", err)
		}
		rep.Zones = zones
	}
	if settings.PlannedIntensityPct > 0 {
		training, power, err := metrics.PlannedWorkout(settings.PlannedIntensityPct, settings.PlannedHours, settings.FTP)
		if err != nil {
			warn(logger, stderr, "planned workout unavailable: %v", err)
		} else {
			difficulty := metrics.DifficultyForTSS(training.TrainingStressScore)
			rep.Planned = &report.Planned{
				IntensityPct: settings.PlannedIntensityPct,
				Hours:        settings.PlannedHours,
				PowerWatts:   power,
				Training:     training,
				Difficulty:   difficulty.DisplayName,
				Recovery:     difficulty.Recovery,
			}
		}
	}
	if settings.NormalizedPower > 0 {
		effort, err := metrics.ActualWorkout(settings.AvgPower, settings.NormalizedPower, settings.ActualHours, settings.FTP)
		if err != nil {
			warn(logger, stderr, "actual workout unavailable: %v", err)
		} else {
			difficulty := metrics.DifficultyForTSS(effort.Training.TrainingStressScore)
			rep.Actual = &report.Actual{
				Hours:      settings.ActualHours,
				Effort:     effort,
				Difficulty: difficulty.DisplayName,
				Recovery:   difficulty.Recovery,
			}
		}
	}

	if err := rep.Write(stdout, format); err != nil {
		fmt.Fprintf(stderr, "bike-calculator failed to write output: %v\n", err)
		return 1
	}

	for _, o := range rep.Batch {
		if o.Err != nil {
			return 1
		}
	}
	return 0
}

// warn reports an optional section that could not be produced
func warn(logger *log.Logger, stderr io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Printf("Main: %s", msg)
	fmt.Fprintf(stderr, "bike-calculator: warning: %s\n", msg)
}
