package metrics

import "fmt"

// PowerZone is one row of a rider's personal seven-zone table
type PowerZone struct {
	Number   int     `json:"number" yaml:"number"`
	Name     string  `json:"name" yaml:"name"`
	MinWatts float64 `json:"min_watts" yaml:"min_watts"`
	MaxWatts float64 `json:"max_watts,omitempty" yaml:"max_watts,omitempty"` // 0 for the open top zone
	Typical  string  `json:"typical_duration" yaml:"typical_duration"`
}

var powerZoneTable = []struct {
	name    string
	min     float64
	max     float64
	typical string
}{
	{"Active Recovery", 0, powerZone2Min, "60-90+ min"},
	{"Endurance", powerZone2Min, powerZone3Min, "2-6 hours"},
	{"Tempo", powerZone3Min, powerZone4Min, "30-90 min"},
	{"Threshold", powerZone4Min, powerZone5Min, "20-60 min"},
	{"VO2 Max", powerZone5Min, powerZone6Min, "3-12 min"},
	{"Anaerobic", powerZone6Min, powerZone7Min, "30 sec-3 min"},
	{"Neuromuscular", powerZone7Min, 0, "5-30 sec"},
}

// PowerZones returns the seven power zones in watts for an FTP
func PowerZones(ftpWatts float64) ([]PowerZone, error) {
	if ftpWatts <= 0 {
		return nil, fmt.Errorf("%w: FTP must be positive, got %v", ErrDivisionUndefined, ftpWatts)
	}
	zones := make([]PowerZone, len(powerZoneTable))
	for i, row := range powerZoneTable {
		zones[i] = PowerZone{
			Number:   i + 1,
			Name:     row.name,
			MinWatts: row.min * ftpWatts,
			MaxWatts: row.max * ftpWatts,
			Typical:  row.typical,
		}
	}
	return zones, nil
}

// RiderCategory labels a rider by FTP-to-weight ratio
func RiderCategory(wattsPerKg float64) string {
	switch {
	case wattsPerKg >= categoryProfessional:
		return "Professional"
	case wattsPerKg >= categoryCat1:
		return "Cat 1/Elite"
	case wattsPerKg >= categoryCat2:
		return "Cat 2"
	case wattsPerKg >= categoryCat3:
		return "Cat 3"
	case wattsPerKg >= categoryCat4:
		return "Cat 4/5"
	default:
		return "Beginner"
	}
}

// PowerToWeight returns watts per kilogram of rider weight
func PowerToWeight(powerWatts, riderWeightKg float64) (float64, error) {
	if riderWeightKg <= 0 {
		return 0, fmt.Errorf("%w: rider weight must be positive, got %v", ErrDivisionUndefined, riderWeightKg)
	}
	return powerWatts / riderWeightKg, nil
}
