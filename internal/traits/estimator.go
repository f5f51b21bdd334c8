// Package traits reduces behavioral vectors to Big Five personality scores
// using fixed, hand-authored indicator weights. No statistical validity is
// claimed for the weights.
package traits

import (
	"strings"

	"github.com/spacesedan/psychprint/internal/affect"
	"github.com/spacesedan/psychprint/internal/behavior"
	"github.com/spacesedan/psychprint/internal/models"
)

// opennessKeywords select the cognitive interest keys that count toward
// openness.
var opennessKeywords = []string{"art", "travel", "culture"}

// Estimator computes OCEAN traits from behavioral vectors.
type Estimator struct{}

// NewEstimator returns a trait estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate averages per-vector trait indicators and clamps each trait to
// [0,1]. An empty vector list yields all-zero traits with no confidence
// entries; callers treat that as a low-confidence condition, not an error.
func (e *Estimator) Estimate(vectors []models.BehaviorVector) models.OceanTraits {
	traits := models.OceanTraits{}
	if len(vectors) == 0 {
		return traits
	}

	n := float64(len(vectors))
	var openness, conscientiousness, extraversion, agreeableness, neuroticism float64

	for _, v := range vectors {
		// Openness from interest diversity.
		for key, value := range v.Cognitive {
			if strings.HasPrefix(key, "interest_") && containsAny(key, opennessKeywords) {
				openness += value * 0.2
			}
		}

		// Conscientiousness from communication discipline.
		conscientiousness += v.Conative[behavior.FeatResponseSpeed] * 0.3

		// Extraversion from initiation and public expression.
		extraversion += v.Conative[behavior.FeatInitiationTendency] * 0.4
		if v.Affective[affect.FeatPublicExpression] > 0 {
			extraversion += 0.3
		}

		// Agreeableness from positive tone and help seeking.
		if valence := v.Affective[affect.FeatValence]; valence > 0 {
			agreeableness += valence * 0.3
		}
		agreeableness += v.Conative[behavior.FeatHelpSeeking] * 0.2

		// Neuroticism from anxiety and emotional intensity.
		neuroticism += v.Affective[affect.FeatAnxietyLevel] * 0.4
		if v.Affective[affect.FeatIntensity] > 0.7 {
			neuroticism += 0.3
		}
	}

	traits.Openness = clamp01(openness / n)
	traits.Conscientiousness = clamp01(conscientiousness / n)
	traits.Extraversion = clamp01(extraversion / n)
	traits.Agreeableness = clamp01(agreeableness / n)
	traits.Neuroticism = clamp01(neuroticism / n)

	traits.Confidence = map[string]float64{}
	for _, name := range models.TraitNames {
		traits.Confidence[name] = baseConfidence
	}

	return traits
}

// baseConfidence mirrors the flat per-vector confidence carried by the
// aggregator.
const baseConfidence = 0.7

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
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
