package boxer

import "fmt"

// Weight class floors in pounds.
const (
	minWeight       = 125
	lightweightMin  = 133
	middleweightMin = 166
	heavyweightMin  = 203
	minAge          = 18
	maxAge          = 40
)

// Boxer is a registry entry. Counters are mutated only by the matchmaker.
type Boxer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
}

// WinPct returns the boxer's win percentage, or 0 before the first fight.
func (b Boxer) WinPct() float64 {
	if b.Fights == 0 {
		return 0
	}
	return float64(b.Wins) / float64(b.Fights)
}

// Supported leaderboard sort keys.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)

// LeaderboardEntry is a boxer snapshot annotated with its win percentage
// (0-100, one decimal place). Only boxers with at least one fight rank.
type LeaderboardEntry struct {
	Boxer
	WinPct float64 `json:"win_pct"`
}

// NewBoxerParams carries the attributes required to register a boxer.
type NewBoxerParams struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

// Validate checks the registration attributes against the ruleset.
func (p NewBoxerParams) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if p.Weight < minWeight {
		return &ValidationError{Field: "weight", Message: fmt.Sprintf("invalid weight: %d, must be at least %d", p.Weight, minWeight)}
	}
	if p.Height <= 0 {
		return &ValidationError{Field: "height", Message: fmt.Sprintf("invalid height: %d, must be greater than 0", p.Height)}
	}
	if p.Reach <= 0 {
		return &ValidationError{Field: "reach", Message: fmt.Sprintf("invalid reach: %.1f, must be greater than 0", p.Reach)}
	}
	if p.Age < minAge || p.Age > maxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("invalid age: %d, must be between %d and %d", p.Age, minAge, maxAge)}
	}
	return nil
}

// WeightClassFor maps a weight to its class. Weights below the featherweight
// floor are rejected at validation, so the fallthrough is empty in practice.
func WeightClassFor(weight int) string {
	switch {
	case weight >= heavyweightMin:
		return "HEAVYWEIGHT"
	case weight >= middleweightMin:
		return "MIDDLEWEIGHT"
	case weight >= lightweightMin:
		return "LIGHTWEIGHT"
	case weight >= minWeight:
		return "FEATHERWEIGHT"
	default:
		return ""
	}
}
