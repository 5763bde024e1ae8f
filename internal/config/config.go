package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BIKECALC"

// Settings are the calculator inputs in the user's unit system, plus the
// application options. Keys match flag names.
type Settings struct {
	Config string `mapstructure:"config" yaml:"-"`

	Units string `mapstructure:"units" yaml:"units"`

	RiderWeight   float64 `mapstructure:"rider-weight" yaml:"rider-weight"`
	GearWeight    float64 `mapstructure:"gear-weight" yaml:"gear-weight"`
	BikeWeight    float64 `mapstructure:"bike-weight" yaml:"bike-weight"`
	EfficiencyPct float64 `mapstructure:"efficiency" yaml:"efficiency"`
	FTP           float64 `mapstructure:"ftp" yaml:"ftp"`

	Distance    float64 `mapstructure:"distance" yaml:"distance"`
	Climb       float64 `mapstructure:"climb" yaml:"climb"`
	Wind        float64 `mapstructure:"wind" yaml:"wind"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
	Altitude    float64 `mapstructure:"altitude" yaml:"altitude"`

	Position string  `mapstructure:"position" yaml:"position"`
	CdA      float64 `mapstructure:"cda" yaml:"cda"`
	Tire     string  `mapstructure:"tire" yaml:"tire"`
	Crr      float64 `mapstructure:"crr" yaml:"crr"`

	Mode  string  `mapstructure:"mode" yaml:"mode"`
	Power float64 `mapstructure:"power" yaml:"power"`
	Speed float64 `mapstructure:"speed" yaml:"speed"`
	Time  string  `mapstructure:"time" yaml:"time"`

	Event     string `mapstructure:"event" yaml:"event"`
	Scenarios string `mapstructure:"scenarios" yaml:"-"`
	Output    string `mapstructure:"output" yaml:"-"`
	Curve     bool   `mapstructure:"curve" yaml:"-"`
	Zones     bool   `mapstructure:"zones" yaml:"-"`

	PlannedIntensityPct float64 `mapstructure:"planned-intensity" yaml:"-"`
	PlannedHours        float64 `mapstructure:"planned-hours" yaml:"-"`

	AvgPower        float64 `mapstructure:"avg-power" yaml:"-"`
	NormalizedPower float64 `mapstructure:"normalized-power" yaml:"-"`
	ActualHours     float64 `mapstructure:"actual-hours" yaml:"-"`

	LogFile       string `mapstructure:"log-file" yaml:"-"`
	LogMaxSizeMB  int    `mapstructure:"log-max-size" yaml:"-"`
	LogMaxBackups int    `mapstructure:"log-max-backups" yaml:"-"`
	LogMaxAgeDays int    `mapstructure:"log-max-age" yaml:"-"`
	LogCompress   bool   `mapstructure:"log-compress" yaml:"-"`
	Verbose       bool   `mapstructure:"verbose" yaml:"-"`
}

// ErrHelp is returned by Load when usage was requested
var ErrHelp = pflag.ErrHelp

// NewFlagSet registers every setting as a flag with its default
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	d := Defaults()

	fs.String("config", "", "Config file (yaml, toml or json)")
	fs.String("units", d.Units, "Unit system: metric|imperial")

	fs.Float64("rider-weight", d.RiderWeight, "Rider weight (kg or lbs)")
	fs.Float64("gear-weight", d.GearWeight, "Clothes and gear weight (kg or lbs)")
	fs.Float64("bike-weight", d.BikeWeight, "Bike weight (kg or lbs)")
	fs.Float64("efficiency", d.EfficiencyPct, "Drivetrain efficiency in percent")
	fs.Float64("ftp", d.FTP, "Functional threshold power in watts (0 disables training metrics)")

	fs.Float64("distance", d.Distance, "Distance (km or miles)")
	fs.Float64("climb", d.Climb, "Total elevation gain (m or ft)")
	fs.Float64("wind", d.Wind, "Wind speed, + headwind / - tailwind (km/h or mph)")
	fs.Float64("temperature", d.Temperature, "Air temperature in °C")
	fs.Float64("altitude", d.Altitude, "Altitude in meters")

	fs.String("position", d.Position, "Riding position preset for CdA")
	fs.Float64("cda", d.CdA, "CdA override in m² (0 uses the position preset)")
	fs.String("tire", d.Tire, "Tire preset for Crr")
	fs.Float64("crr", d.Crr, "Crr override (0 uses the tire preset)")

	fs.StringP("mode", "m", d.Mode, "Target: power|speed|time")
	fs.Float64P("power", "p", d.Power, "Target power in watts")
	fs.Float64P("speed", "s", d.Speed, "Target speed (km/h or mph)")
	fs.StringP("time", "t", d.Time, "Target finish time, H:MM:SS or Go duration")

	fs.String("event", d.Event, "Predict a race: time-trial|road-race|criterium|gran-fondo")
	fs.String("scenarios", d.Scenarios, "YAML file of scenarios to solve as a batch")
	fs.StringP("output", "o", d.Output, "Output format: text|json|yaml")
	fs.Bool("curve", d.Curve, "Include the power-vs-speed curve")
	fs.Bool("zones", d.Zones, "Include personal power zones")
	fs.Float64("planned-intensity", d.PlannedIntensityPct, "Planned workout intensity in percent of FTP (0 skips)")
	fs.Float64("planned-hours", d.PlannedHours, "Planned workout duration in hours")
	fs.Float64("avg-power", d.AvgPower, "Average power of a completed workout in watts")
	fs.Float64("normalized-power", d.NormalizedPower, "Normalized power of a completed workout in watts (0 skips)")
	fs.Float64("actual-hours", d.ActualHours, "Duration of the completed workout in hours")

	fs.String("log-file", d.LogFile, "Write logs to this file with rotation")
	fs.Int("log-max-size", d.LogMaxSizeMB, "Log file size in MB before rotation")
	fs.Int("log-max-backups", d.LogMaxBackups, "Rotated log files to keep")
	fs.Int("log-max-age", d.LogMaxAgeDays, "Days to keep rotated log files")
	fs.Bool("log-compress", d.LogCompress, "Compress rotated log files")
	fs.BoolP("verbose", "v", d.Verbose, "Log to stderr when no log file is set")

	return fs
}

// Load resolves settings from flags, BIKECALC_* environment variables, an
// optional config file and defaults, in that priority order
func Load(args []string) (*Settings, error) {
	fs := NewFlagSet("bike-calculator")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return LoadFlags(fs)
}

// LoadFlags resolves settings from an already parsed flag set
func LoadFlags(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("config", d.Config)
	v.SetDefault("units", d.Units)
	v.SetDefault("rider-weight", d.RiderWeight)
	v.SetDefault("gear-weight", d.GearWeight)
	v.SetDefault("bike-weight", d.BikeWeight)
	v.SetDefault("efficiency", d.EfficiencyPct)
	v.SetDefault("ftp", d.FTP)
	v.SetDefault("distance", d.Distance)
	v.SetDefault("climb", d.Climb)
	v.SetDefault("wind", d.Wind)
	v.SetDefault("temperature", d.Temperature)
	v.SetDefault("altitude", d.Altitude)
	v.SetDefault("position", d.Position)
	v.SetDefault("cda", d.CdA)
	v.SetDefault("tire", d.Tire)
	v.SetDefault("crr", d.Crr)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("power", d.Power)
	v.SetDefault("speed", d.Speed)
	v.SetDefault("time", d.Time)
	v.SetDefault("event", d.Event)
	v.SetDefault("scenarios", d.Scenarios)
	v.SetDefault("output", d.Output)
	v.SetDefault("curve", d.Curve)
	v.SetDefault("zones", d.Zones)
	v.SetDefault("planned-intensity", d.PlannedIntensityPct)
	v.SetDefault("planned-hours", d.PlannedHours)
	v.SetDefault("avg-power", d.AvgPower)
	v.SetDefault("normalized-power", d.NormalizedPower)
	v.SetDefault("actual-hours", d.ActualHours)
	v.SetDefault("log-file", d.LogFile)
	v.SetDefault("log-max-size", d.LogMaxSizeMB)
	v.SetDefault("log-max-backups", d.LogMaxBackups)
	v.SetDefault("log-max-age", d.LogMaxAgeDays)
	v.SetDefault("log-compress", d.LogCompress)
	v.SetDefault("verbose", d.Verbose)
}
