package metrics

import "math"

// AllDifficulties defines the TSS bands in ascending order
var AllDifficulties = []DifficultyInfo{
	{Difficulty: DifficultyLow, DisplayName: "Low", Recovery: "12-24 hours", MaxTSS: 100},
	{Difficulty: DifficultyMedium, DisplayName: "Medium", Recovery: "24-36 hours", MaxTSS: 200},
	{Difficulty: DifficultyHigh, DisplayName: "High", Recovery: "36-48 hours", MaxTSS: 300},
	{Difficulty: DifficultyVeryHigh, DisplayName: "Very High", Recovery: "48-72 hours", MaxTSS: 400},
	{Difficulty: DifficultyExtreme, DisplayName: "Extreme", Recovery: "72+ hours", MaxTSS: math.Inf(1)},
}

// DifficultyForTSS returns the band a training stress score falls into
func DifficultyForTSS(tss float64) DifficultyInfo {
	for _, info := range AllDifficulties {
		if tss < info.MaxTSS {
			return info
		}
	}
	return AllDifficulties[len(AllDifficulties)-1]
}

func (d Difficulty) String() string {
	for _, info := range AllDifficulties {
		if info.Difficulty == d {
			return info.DisplayName
		}
	}
	return "Unknown"
}
