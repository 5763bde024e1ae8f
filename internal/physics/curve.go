package physics

// CurvePoint is one sample of the power-vs-speed curve
type CurvePoint struct {
	SpeedKmh   float64 `json:"speed_kmh" yaml:"speed_kmh"`
	PowerWatts float64 `json:"power_watts" yaml:"power_watts"`
}

// PowerCurve samples RequiredPower at CurvePoints evenly spaced speeds
// between CurveMinSpeedKmh and CurveMaxSpeedKmh inclusive
func PowerCurve(cfg RideConfiguration) []CurvePoint {
	return PowerCurveRange(cfg, CurveMinSpeedKmh, CurveMaxSpeedKmh, CurvePoints)
}

// PowerCurveRange samples points speeds from minKmh to maxKmh inclusive
func PowerCurveRange(cfg RideConfiguration, minKmh, maxKmh float64, points int) []CurvePoint {
	if points <= 0 {
		return nil
	}
	if points == 1 {
		return []CurvePoint{{SpeedKmh: minKmh, PowerWatts: RequiredPower(minKmh/MetersPerSecToKmh, cfg).PowerWatts}}
	}

	step := (maxKmh - minKmh) / float64(points-1)
	curve := make([]CurvePoint, points)
	for i := range curve {
		kmh := minKmh + step*float64(i)
		curve[i] = CurvePoint{
			SpeedKmh:   kmh,
			PowerWatts: RequiredPower(kmh/MetersPerSecToKmh, cfg).PowerWatts,
		}
	}
	return curve
}

// PowerShare is the split of wheel power between the three resistances, in percent
type PowerShare struct {
	RollingPct float64 `json:"rolling_pct" yaml:"rolling_pct"`
	GradePct   float64 `json:"grade_pct" yaml:"grade_pct"`
	AirPct     float64 `json:"air_pct" yaml:"air_pct"`
}

// Distribution splits the wheel power of r by force component. The second
// return is false when the total is not positive, where shares are meaningless.
func Distribution(r PowerResult) (PowerShare, bool) {
	total := r.Forces.Total()
	if total <= 0 || r.SpeedMs <= 0 {
		return PowerShare{}, false
	}
	return PowerShare{
		RollingPct: r.Forces.Rolling / total * 100,
		GradePct:   r.Forces.Grade / total * 100,
		AirPct:     r.Forces.Air / total * 100,
	}, true
}

// AverageGrade returns the mean slope in percent for a climb over a distance
func AverageGrade(elevationGainMeters, distanceMeters float64) float64 {
	if distanceMeters <= 0 {
		return 0
	}
	return 100 * elevationGainMeters / distanceMeters
}
