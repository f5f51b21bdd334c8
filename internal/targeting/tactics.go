package targeting

import (
	"fmt"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// highEngagementThreshold: interaction counts above this are read as
// evidence the targeting worked.
const highEngagementThreshold = 5

// Tactics categorizes the platform's targeting evidence into manipulation
// tactic buckets using substring rules over vulnerability-window
// descriptions, high-engagement interaction labels and targeting categories.
func (r *Reverser) Tactics(tp models.TargetingProfile) map[string][]string {
	tactics := map[string][]string{
		models.TacticEmotionalManipulation: nil,
		models.TacticSocialPressure:        nil,
		models.TacticScarcity:              nil,
		models.TacticAuthorityAppeals:      nil,
		models.TacticVulnerabilityExploit:  nil,
	}

	for _, window := range tp.VulnerabilityWindows {
		desc := window.Description
		if strings.Contains(desc, "emotional") {
			tactics[models.TacticEmotionalManipulation] = append(tactics[models.TacticEmotionalManipulation],
				"Targeted during emotional vulnerability: "+desc)
		} else if strings.Contains(desc, "financial") {
			tactics[models.TacticVulnerabilityExploit] = append(tactics[models.TacticVulnerabilityExploit],
				"Exploited financial stress: "+desc)
		}
	}

	for _, label := range sortedEngagementKeys(tp.EngagementPatterns) {
		count := tp.EngagementPatterns[label]
		if count <= highEngagementThreshold {
			continue
		}
		lower := strings.ToLower(label)
		if strings.Contains(lower, "anxiety") || strings.Contains(lower, "stress") {
			tactics[models.TacticEmotionalManipulation] = append(tactics[models.TacticEmotionalManipulation],
				fmt.Sprintf("High engagement with anxiety-inducing content: %s", label))
		} else if strings.Contains(lower, "social") {
			tactics[models.TacticSocialPressure] = append(tactics[models.TacticSocialPressure],
				fmt.Sprintf("Responded to social pressure tactics: %s", label))
		}
	}

	for _, category := range tp.TargetingCategories {
		lower := strings.ToLower(category)
		switch {
		case containsAny(lower, scarcityWords):
			tactics[models.TacticScarcity] = append(tactics[models.TacticScarcity],
				"Scarcity-based targeting: "+category)
		case containsAny(lower, authorityWords):
			tactics[models.TacticAuthorityAppeals] = append(tactics[models.TacticAuthorityAppeals],
				"Authority-based targeting: "+category)
		case containsAny(lower, lonelinessWord):
			tactics[models.TacticVulnerabilityExploit] = append(tactics[models.TacticVulnerabilityExploit],
				"Loneliness exploitation: "+category)
		}
	}

	return tactics
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
