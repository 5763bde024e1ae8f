package physics

// Physical constants used by the force model
const (
	Gravity              = 9.8067 // m/s²
	SeaLevelAirDensity   = 1.225  // kg/m³ at 0 m, 0 °C reference
	AirDensityScaleMeter = 8000.0 // altitude e-folding length for the density decay
	ReferenceKelvin      = 273.0  // temperature reference for ideal-gas scaling
	AbsoluteZeroCelsius  = -273.0
)

// Speed solver search interval and resolution
const (
	SolverMinSpeedMs  = 0.1  // 0.36 km/h
	SolverMaxSpeedMs  = 30.0 // 108 km/h
	SolverIterations  = 50
	SolverTolerance   = 1e-6 // m/s, distance from a bound that counts as saturated
	MetersPerSecToKmh = 3.6
)

// Power curve sampling, in km/h
const (
	CurveMinSpeedKmh = 10.0
	CurveMaxSpeedKmh = 45.0
	CurvePoints      = 36
)
