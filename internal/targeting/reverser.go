// Package targeting reverse-maps the platform's advertising categorization
// into a second, parallel psychological estimate: OCEAN traits as the
// platform saw them, the manipulation tactics its targeting implies, and the
// subject's susceptibility to each tactic.
package targeting

import (
	"errors"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// Reverser decodes targeting evidence through the fixed psychology lookup
// tables. Tables are injected at construction.
type Reverser struct {
	pmap PsychologyMap
}

// NewReverser builds a reverser over the given psychology map.
func NewReverser(pmap PsychologyMap) *Reverser {
	return &Reverser{pmap: pmap}
}

// ReverseTraits estimates the OCEAN profile the platform inferred, from
// three independent evidence sources: inferred interests weighted by
// confidence, behavioral segment labels, and targeting category strings.
// Signed contributions are averaged per trait, rescaled to [0,1] via
// (avg+1)/2 and clamped. Per-trait confidence grows with observation count.
func (r *Reverser) ReverseTraits(tp models.TargetingProfile) models.OceanTraits {
	contributions := map[string][]float64{}

	for _, interest := range sortedInterestKeys(tp.InferredInterests) {
		confidence := tp.InferredInterests[interest]
		for trait, score := range r.mapInterest(interest) {
			contributions[trait] = append(contributions[trait], score*confidence)
		}
	}

	for _, segment := range tp.BehavioralSegments {
		for trait, score := range r.mapSegment(segment) {
			contributions[trait] = append(contributions[trait], score)
		}
	}

	for _, category := range tp.TargetingCategories {
		for trait, score := range r.mapCategory(category) {
			contributions[trait] = append(contributions[trait], score)
		}
	}

	traits := models.OceanTraits{Confidence: map[string]float64{}}
	for _, trait := range models.TraitNames {
		scores := contributions[trait]
		traits.Confidence[trait] = min1(float64(len(scores)) * 0.1)
		if len(scores) == 0 {
			continue
		}
		var sum float64
		for _, s := range scores {
			sum += s
		}
		avg := sum / float64(len(scores))
		traits.Set(trait, clamp01((avg+1.0)/2.0))
	}

	return traits
}

// mapInterest matches an interest label against the interest lookup; the
// first matching keyword in sorted order wins, so a label touching several
// table rows resolves the same way on every run.
func (r *Reverser) mapInterest(interest string) TraitWeights {
	lower := strings.ToLower(interest)
	for _, keyword := range sortedWeightKeys(r.pmap.Interests) {
		if keywordMatches(lower, keyword) {
			return r.pmap.Interests[keyword]
		}
	}
	return nil
}

// mapSegment decodes an explicit "<trait>_<score>_<advertiser>" label when
// possible, then falls back to behavior-pattern keywords. Unparseable
// segments are logged and skipped instead of silently swallowed.
func (r *Reverser) mapSegment(segment string) TraitWeights {
	weights := TraitWeights{}

	parsed, err := ParseSegment(segment)
	switch {
	case err == nil:
		weights[parsed.Trait] = parsed.Score
	case errors.Is(err, ErrUnparseableSegment):
		logSkippedSegment(segment, err)
	}

	lower := strings.ToLower(segment)
	for _, keyword := range sortedWeightKeys(r.pmap.Behaviors) {
		if strings.Contains(lower, keyword) {
			for trait, score := range r.pmap.Behaviors[keyword] {
				weights[trait] = score
			}
			break
		}
	}

	return weights
}

// mapCategory matches one targeting category against every lookup class.
// Tables apply in a fixed order and keywords within a table in sorted order,
// so overlapping matches overwrite deterministically.
func (r *Reverser) mapCategory(category string) TraitWeights {
	lower := strings.ToLower(category)
	weights := TraitWeights{}

	for _, table := range []map[string]TraitWeights{r.pmap.Interests, r.pmap.Behaviors, r.pmap.Demographics} {
		for _, keyword := range sortedWeightKeys(table) {
			if keywordMatches(lower, keyword) {
				for trait, score := range table[keyword] {
					weights[trait] = score
				}
			}
		}
	}

	return weights
}

// keywordMatches reports whether the keyword, or any of its underscore-
// separated parts, appears in the lowercased evidence string.
func keywordMatches(lower, keyword string) bool {
	if strings.Contains(lower, keyword) {
		return true
	}
	for _, part := range strings.Split(keyword, "_") {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
