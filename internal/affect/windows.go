package affect

import (
	"fmt"
	"strings"
	"time"

	"github.com/spacesedan/psychprint/internal/models"
)

// HourRange is an inclusive hour-of-day range that may wrap past midnight.
type HourRange struct {
	Start int
	End   int
}

// Contains reports membership with wrap-around semantics, so {22, 2}
// covers 22:00 through 02:59.
func (r HourRange) Contains(hour int) bool {
	if r.Start <= r.End {
		return hour >= r.Start && hour <= r.End
	}
	return hour >= r.Start || hour <= r.End
}

// SeasonRange is an inclusive month/day range that may wrap past new year.
type SeasonRange struct {
	Name       string
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// Contains reports whether the month/day falls inside the range.
func (s SeasonRange) Contains(month time.Month, day int) bool {
	start := int(s.StartMonth)*100 + s.StartDay
	end := int(s.EndMonth)*100 + s.EndDay
	v := int(month)*100 + day
	if start <= end {
		return v >= start && v <= end
	}
	return v >= start || v <= end
}

// WindowTable holds the fixed calendar patterns fed into vulnerability
// scoring. Injected at construction so tests can substitute their own.
type WindowTable struct {
	VulnerableHours []HourRange
	StressDays      []time.Weekday
	Seasons         []SeasonRange
}

// DefaultWindowTable returns the stock manipulation-timing patterns: late
// night and early morning hours, week boundaries, and emotionally loaded
// seasons.
func DefaultWindowTable() WindowTable {
	return WindowTable{
		VulnerableHours: []HourRange{{Start: 22, End: 2}, {Start: 3, End: 6}},
		StressDays:      []time.Weekday{time.Monday, time.Sunday},
		Seasons: []SeasonRange{
			{Name: "valentine_loneliness", StartMonth: time.February, StartDay: 10, EndMonth: time.February, EndDay: 16},
			{Name: "holiday_depression", StartMonth: time.December, StartDay: 20, EndMonth: time.January, EndDay: 5},
			{Name: "new_year_anxiety", StartMonth: time.December, StartDay: 28, EndMonth: time.January, EndDay: 15},
		},
	}
}

// windowThreshold is the strict lower bound an accumulated score must exceed
// before a point is reported.
const windowThreshold = 0.3

// Analyzer scans the emotional timeline for vulnerability windows and
// computes resilience metrics. It keeps no state between calls.
type Analyzer struct {
	table WindowTable
}

// NewAnalyzer builds an analyzer over the given window table.
func NewAnalyzer(table WindowTable) *Analyzer {
	return &Analyzer{table: table}
}

// Windows emits one record per timeline point whose accumulated
// vulnerability score strictly exceeds 0.3. Points without a timestamp carry
// no timing evidence and are skipped.
func (a *Analyzer) Windows(timeline []models.EmotionalState) []models.ManipulationWindow {
	var windows []models.ManipulationWindow

	for _, state := range timeline {
		if state.Timestamp == nil {
			continue
		}

		score := 0.0
		var labels []string

		if state.Valence < -0.5 {
			score += 0.4
			labels = append(labels, "negative_emotional_state")
		}
		if state.Arousal > 0.7 {
			score += 0.3
			labels = append(labels, "high_arousal")
		}

		ts := *state.Timestamp
		for _, hr := range a.table.VulnerableHours {
			if hr.Contains(ts.Hour()) {
				score += 0.2
				labels = append(labels, "vulnerable_hours")
			}
		}
		for _, day := range a.table.StressDays {
			if ts.Weekday() == day {
				score += 0.1
				labels = append(labels, "stress_day")
			}
		}
		for _, season := range a.table.Seasons {
			if season.Contains(ts.Month(), ts.Day()) {
				score += 0.2
				labels = append(labels, season.Name)
			}
		}

		if score > windowThreshold {
			windows = append(windows, models.ManipulationWindow{
				Timestamp: ts,
				Label:     strings.Join(labels, "_"),
				Score:     score,
			})
		}
	}

	return windows
}

// VolatilityFlags reports consecutive timeline points whose valence or
// arousal jumped by more than 0.4, a pattern consistent with reaction to
// targeted content.
func (a *Analyzer) VolatilityFlags(timeline []models.EmotionalState) []string {
	var flags []string

	for i := 1; i < len(timeline); i++ {
		valenceChange := abs(timeline[i].Valence - timeline[i-1].Valence)
		arousalChange := abs(timeline[i].Arousal - timeline[i-1].Arousal)

		if valenceChange > 0.4 || arousalChange > 0.4 {
			when := "unknown time"
			if timeline[i].Timestamp != nil {
				when = timeline[i].Timestamp.Format("2006-01-02 15:04")
			}
			flags = append(flags, fmt.Sprintf("significant emotional change at %s (valence %+.2f, arousal %+.2f)",
				when, timeline[i].Valence-timeline[i-1].Valence, timeline[i].Arousal-timeline[i-1].Arousal))
		}
	}

	return flags
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
