package targeting

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// BuildProfile reconstructs the platform's own categorization of the subject
// from raw advertising evidence. The result is read-only afterward.
func (r *Reverser) BuildProfile(ads models.AdsData) models.TargetingProfile {
	profile := models.TargetingProfile{
		InferredInterests:  map[string]float64{},
		EngagementPatterns: map[string]int{},
	}

	// Topics the platform decided the subject is interested in. The export
	// carries no confidence values, so full confidence is assumed.
	for _, topic := range ads.Topics {
		profile.InferredInterests[topic] = 1.0
	}

	// Custom audiences reveal which traits advertisers paid to reach.
	// High-confidence trait inferences become behavioral segment labels.
	for _, audience := range ads.Audiences {
		weights := inferAdvertiserPsychology(audience.Advertiser)
		for _, trait := range models.TraitNames {
			if score, ok := weights[trait]; ok && score > 0.6 {
				profile.BehavioralSegments = append(profile.BehavioralSegments,
					fmt.Sprintf("%s_%.1f_%s", trait, score, audience.Advertiser))
			}
		}

		if vulnType := inferAdvertiserVulnerability(audience.Advertiser); vulnType != "" {
			// The export does not say when the audience was active, so the
			// window carries no timestamp.
			profile.VulnerabilityWindows = append(profile.VulnerabilityWindows, models.VulnerabilityWindow{
				Description: fmt.Sprintf("%s_targeting_by_%s", vulnType, audience.Advertiser),
			})
		}
	}

	for _, interaction := range ads.Interactions {
		key := interaction.Advertiser + "_" + interaction.Action
		profile.EngagementPatterns[key]++
	}

	for _, category := range ads.OtherCategories {
		profile.TargetingCategories = append(profile.TargetingCategories,
			classifyCategory(category)+":"+category)
	}

	return profile
}

// inferAdvertiserPsychology maps an advertiser name to the traits the
// platform likely targeted, by keyword.
func inferAdvertiserPsychology(advertiser string) TraitWeights {
	lower := strings.ToLower(advertiser)
	weights := TraitWeights{}
	for _, trait := range models.TraitNames {
		for _, word := range AdvertiserTraitWords[trait] {
			if strings.Contains(lower, word) {
				weights[trait] = targetedTraitScore
				break
			}
		}
	}
	return weights
}

// inferAdvertiserVulnerability returns the vulnerability class an advertiser
// name implies, empty when none.
func inferAdvertiserVulnerability(advertiser string) models.VulnerabilityType {
	lower := strings.ToLower(advertiser)

	for _, word := range financialVulnWords {
		if strings.Contains(lower, word) {
			return models.VulnFinancial
		}
	}
	for _, word := range AdvertiserTraitWords[models.TraitNeuroticism] {
		if strings.Contains(lower, word) {
			return models.VulnEmotional
		}
	}
	return ""
}

func classifyCategory(category string) string {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "interest"):
		return "interests"
	case strings.Contains(lower, "behavior"):
		return "behaviors"
	default:
		return "demographics"
	}
}

// sortedEngagementKeys returns engagement labels in deterministic order.
func sortedEngagementKeys(engagement map[string]int) []string {
	keys := make([]string, 0, len(engagement))
	for k := range engagement {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedWeightKeys returns lookup-table keywords in deterministic order.
func sortedWeightKeys(table map[string]TraitWeights) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedInterestKeys returns inferred-interest labels in deterministic order.
func sortedInterestKeys(interests map[string]float64) []string {
	keys := make([]string, 0, len(interests))
	for k := range interests {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func logSkippedSegment(segment string, err error) {
	slog.Debug("[TargetingReverser] Skipping segment",
		slog.String("segment", segment),
		slog.String("error", err.Error()))
}
