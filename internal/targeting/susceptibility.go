package targeting

import (
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// Susceptibility estimates how likely the subject is to respond to each
// manipulation tactic. Seeded from the text-derived traits (not the
// platform's own estimate) via fixed thresholds, then raised by normalized
// engagement counts. Every score is computed independently and capped at
// 1.0; the map does not sum to 1.
func (r *Reverser) Susceptibility(tp models.TargetingProfile, actual models.OceanTraits) map[string]float64 {
	susceptibility := map[string]float64{
		models.TacticEmotionalManipulation: 0.0,
		models.TacticSocialProof:           0.0,
		models.TacticAuthorityAppeals:      0.0,
		models.TacticScarcity:              0.0,
		models.TacticPersonalizationBias:   0.0,
	}

	if actual.Neuroticism > 0.6 {
		susceptibility[models.TacticEmotionalManipulation] += 0.4
	}
	if actual.Extraversion > 0.7 {
		susceptibility[models.TacticSocialProof] += 0.4
	}
	if actual.Conscientiousness < 0.4 {
		susceptibility[models.TacticScarcity] += 0.3
	}
	if actual.Openness > 0.7 {
		susceptibility[models.TacticPersonalizationBias] += 0.3
	}
	if actual.Agreeableness > 0.7 {
		susceptibility[models.TacticAuthorityAppeals] += 0.3
	}

	// Demonstrated engagement with targeted content raises the estimate.
	for _, label := range sortedEngagementKeys(tp.EngagementPatterns) {
		count := tp.EngagementPatterns[label]
		normalized := min1(float64(count) / 10.0)
		lower := strings.ToLower(label)
		if strings.Contains(lower, "emotional") {
			susceptibility[models.TacticEmotionalManipulation] += normalized * 0.2
		} else if strings.Contains(lower, "social") {
			susceptibility[models.TacticSocialProof] += normalized * 0.2
		}
	}

	for tactic := range susceptibility {
		susceptibility[tactic] = min1(susceptibility[tactic])
	}

	return susceptibility
}
