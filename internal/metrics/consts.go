package metrics

// Zone is one of the six intensity bands keyed by intensity factor
type Zone int

const (
	ZoneRecovery Zone = iota + 1
	ZoneEndurance
	ZoneTempo
	ZoneThreshold
	ZoneVO2Max
	ZoneAnaerobic
)

// ZoneInfo contains display information and the lower IF bound of a zone
type ZoneInfo struct {
	Zone        Zone
	DisplayName string
	Description string
	MinIF       float64 // inclusive
}

// AllZones defines the intensity bands in ascending order
var AllZones = []ZoneInfo{
	{Zone: ZoneRecovery, DisplayName: "Recovery", Description: "Very easy, recovery ride", MinIF: 0},
	{Zone: ZoneEndurance, DisplayName: "Endurance", Description: "Long, sustained efforts to build aerobic endurance", MinIF: 0.55},
	{Zone: ZoneTempo, DisplayName: "Tempo", Description: "Moderate intensity, comfortably hard effort", MinIF: 0.75},
	{Zone: ZoneThreshold, DisplayName: "Threshold", Description: "Lactate threshold training, challenging but sustainable", MinIF: 0.90},
	{Zone: ZoneVO2Max, DisplayName: "VO2 Max", Description: "High intensity, improves maximal oxygen uptake", MinIF: 1.05},
	{Zone: ZoneAnaerobic, DisplayName: "Anaerobic", Description: "Very high intensity, improves anaerobic capacity", MinIF: 1.20},
}

// GetZoneInfo returns the info for a given zone
func GetZoneInfo(zone Zone) (ZoneInfo, bool) {
	for _, info := range AllZones {
		if info.Zone == zone {
			return info, true
		}
	}
	return ZoneInfo{}, false
}

func (z Zone) String() string {
	if info, ok := GetZoneInfo(z); ok {
		return info.DisplayName
	}
	return "Unknown"
}

// Difficulty classifies a single workout by its training stress score
type Difficulty int

const (
	DifficultyLow Difficulty = iota
	DifficultyMedium
	DifficultyHigh
	DifficultyVeryHigh
	DifficultyExtreme
)

// DifficultyInfo contains display information and the upper TSS bound
type DifficultyInfo struct {
	Difficulty  Difficulty
	DisplayName string
	Recovery    string
	MaxTSS      float64 // exclusive, +Inf for the last band
}

// Power zone boundaries as fractions of FTP, for the seven-zone table
const (
	powerZone2Min = 0.55
	powerZone3Min = 0.75
	powerZone4Min = 0.90
	powerZone5Min = 1.05
	powerZone6Min = 1.20
	powerZone7Min = 1.50
)

// Rider category thresholds in W/kg
const (
	categoryProfessional = 5.0
	categoryCat1         = 4.0
	categoryCat2         = 3.5
	categoryCat3         = 3.0
	categoryCat4         = 2.5
)
