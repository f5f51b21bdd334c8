package behavior

import (
	"strings"

	"github.com/spacesedan/psychprint/internal/affect"
	"github.com/spacesedan/psychprint/internal/models"
)

// baseConfidence is attached to every emitted vector; the per-vector
// confidence model is flat.
const baseConfidence = 0.7

// Conative feature keys.
const (
	FeatResponseSpeed      = "response_speed"
	FeatInitiationTendency = "initiation_tendency"
	FeatHelpSeeking        = "help_seeking_behavior"
	FeatImpulsivity        = "impulsivity"
	FeatRiskTolerance      = "risk_tolerance"
)

// Aggregator combines cognitive, affective and conative indicator sets into
// behavioral vectors. One vector is emitted per affective timeline entry; the
// cognitive and conative maps are computed once for the whole corpus and
// shared by every entry.
type Aggregator struct {
	values ValueTable
}

// NewAggregator builds an aggregator around the given value table.
func NewAggregator(values ValueTable) *Aggregator {
	return &Aggregator{values: values}
}

// Cognitive derives the corpus-wide cognitive vector from the platform's
// interest and category data.
func (a *Aggregator) Cognitive(tp models.TargetingProfile) map[string]float64 {
	cognitive := map[string]float64{}

	for interest, confidence := range tp.InferredInterests {
		cognitive["interest_"+normalizeInterest(interest)] = confidence
	}

	for _, category := range tp.TargetingCategories {
		name := category
		if idx := strings.Index(category, ":"); idx >= 0 {
			name = category[idx+1:]
		}
		lower := strings.ToLower(name)
		for keyword, values := range a.values {
			if !strings.Contains(lower, keyword) {
				continue
			}
			for value, strength := range values {
				cognitive["value_"+value] += strength
			}
		}
	}

	return cognitive
}

// Conative derives the single aggregate conative vector from conversation
// statistics, help-seeking counts and ad-engagement patterns.
func (a *Aggregator) Conative(convs []models.ConversationStats, helpSeeking int, engagement map[string]int) map[string]float64 {
	conative := map[string]float64{
		FeatResponseSpeed:      0.0,
		FeatInitiationTendency: 0.0,
		FeatHelpSeeking:        0.0,
		FeatImpulsivity:        0.0,
		FeatRiskTolerance:      0.0,
	}

	if len(convs) > 0 {
		var totalSpeed, totalInitiation float64
		for _, conv := range convs {
			// Faster responses score higher; conversations without
			// measurable response times contribute nothing.
			if conv.AvgResponseSeconds > 0 {
				totalSpeed += 3600.0 / conv.AvgResponseSeconds
			}
			if conv.TotalMessages > 0 {
				totalInitiation += float64(conv.UserMessages) / float64(conv.TotalMessages)
			}
		}
		conative[FeatResponseSpeed] = totalSpeed / float64(len(convs))
		conative[FeatInitiationTendency] = totalInitiation / float64(len(convs))
	}

	conative[FeatHelpSeeking] = float64(helpSeeking) / 10.0

	for label, count := range engagement {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "click") {
			conative[FeatImpulsivity] += float64(count) * 0.1
		} else if strings.Contains(lower, "purchase") {
			conative[FeatRiskTolerance] += float64(count) * 0.2
		}
	}

	return conative
}

// Vectors emits one behavioral vector per affective entry, attaching the
// shared cognitive and conative maps to each.
func (a *Aggregator) Vectors(cognitive, conative map[string]float64, entries []affect.Entry) []models.BehaviorVector {
	vectors := make([]models.BehaviorVector, 0, len(entries))
	for _, entry := range entries {
		vectors = append(vectors, models.BehaviorVector{
			Cognitive:  cognitive,
			Affective:  entry.Features,
			Conative:   conative,
			Timestamp:  entry.State.Timestamp,
			Confidence: baseConfidence,
		})
	}
	return vectors
}

func normalizeInterest(interest string) string {
	s := strings.ToLower(interest)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, "-", "_")
}
