package targeting

import "github.com/spacesedan/psychprint/internal/models"

// TraitWeights is a signed per-trait contribution set in [-1,1].
type TraitWeights map[string]float64

// PsychologyMap associates keyword substrings from the platform's targeting
// vocabulary with signed trait contributions. Split by evidence class the
// way the platform organizes its own categories.
type PsychologyMap struct {
	Interests    map[string]TraitWeights
	Behaviors    map[string]TraitWeights
	Demographics map[string]TraitWeights
}

// DefaultPsychologyMap returns the stock targeting-to-psychology lookup.
func DefaultPsychologyMap() PsychologyMap {
	return PsychologyMap{
		Interests: map[string]TraitWeights{
			"technology":    {models.TraitOpenness: 0.8, models.TraitConscientiousness: 0.6},
			"fitness":       {models.TraitConscientiousness: 0.9, models.TraitNeuroticism: -0.3},
			"luxury_brands": {models.TraitOpenness: 0.7, models.TraitNeuroticism: 0.4},
			"art":           {models.TraitOpenness: 0.9, models.TraitAgreeableness: 0.6},
			"travel":        {models.TraitOpenness: 0.9, models.TraitExtraversion: 0.7},
			"music":         {models.TraitOpenness: 0.8, models.TraitExtraversion: 0.5},
			"food":          {models.TraitAgreeableness: 0.6, models.TraitOpenness: 0.5},
			"sports":        {models.TraitExtraversion: 0.7, models.TraitConscientiousness: 0.6},
			"politics":      {models.TraitOpenness: 0.6, models.TraitNeuroticism: 0.5},
			"fashion":       {models.TraitOpenness: 0.7, models.TraitExtraversion: 0.6},
		},
		Behaviors: map[string]TraitWeights{
			"frequent_travelers":  {models.TraitOpenness: 0.9, models.TraitExtraversion: 0.7},
			"mobile_device_users": {models.TraitOpenness: 0.6, models.TraitConscientiousness: 0.5},
			"online_shoppers":     {models.TraitConscientiousness: -0.3, models.TraitNeuroticism: 0.4},
			"social_media_users":  {models.TraitExtraversion: 0.8, models.TraitNeuroticism: 0.3},
			"gamers":              {models.TraitOpenness: 0.6, models.TraitConscientiousness: -0.2},
			"early_adopters":      {models.TraitOpenness: 0.9, models.TraitConscientiousness: 0.5},
		},
		Demographics: map[string]TraitWeights{
			"relationship_status_single":  {models.TraitNeuroticism: 0.3, models.TraitExtraversion: -0.2},
			"relationship_status_married": {models.TraitAgreeableness: 0.6, models.TraitConscientiousness: 0.7},
			"education_college":           {models.TraitOpenness: 0.7, models.TraitConscientiousness: 0.6},
			"education_high_school":       {models.TraitOpenness: -0.3, models.TraitConscientiousness: -0.2},
			"parent":                      {models.TraitAgreeableness: 0.8, models.TraitConscientiousness: 0.7},
			"new_job":                     {models.TraitConscientiousness: 0.6, models.TraitNeuroticism: 0.4},
		},
	}
}

// AdvertiserTraitWords maps trait names to the advertiser-name substrings
// that imply the platform targeted that trait. A hit contributes the flat
// targetedTraitScore.
var AdvertiserTraitWords = map[string][]string{
	models.TraitOpenness:          {"art", "travel", "culture", "music", "creative", "design"},
	models.TraitConscientiousness: {"productivity", "organization", "planning", "finance", "investment"},
	models.TraitExtraversion:      {"social", "party", "event", "networking", "dating"},
	models.TraitAgreeableness:     {"charity", "family", "community", "volunteer", "caring"},
	models.TraitNeuroticism:       {"anxiety", "stress", "health", "insurance", "security", "therapy"},
}

// targetedTraitScore is assigned when an advertiser name implies a trait.
const targetedTraitScore = 0.8

// financialVulnWords flag advertisers exploiting financial distress.
var financialVulnWords = []string{"loan", "debt", "credit", "payday", "financial_help"}

// VulnerabilityKeywords maps vulnerability types to the evidence substrings
// that indicate the platform categorized the subject for that weakness.
var VulnerabilityKeywords = map[models.VulnerabilityType][]string{
	models.VulnEmotional: {"anxiety", "depression", "stress", "therapy", "counseling", "mental health"},
	models.VulnFinancial: {"loan", "debt", "credit repair", "payday", "financial assistance"},
	models.VulnSocial:    {"dating", "loneliness", "social skills", "relationship advice"},
	models.VulnHealth:    {"medical", "symptoms", "disease", "treatment", "healthcare"},
}

// vulnerabilityTypeOrder fixes iteration order for deterministic output.
var vulnerabilityTypeOrder = []models.VulnerabilityType{
	models.VulnEmotional,
	models.VulnFinancial,
	models.VulnSocial,
	models.VulnHealth,
}

// Tactic keyword tables for categorizing targeting categories.
var (
	scarcityWords  = []string{"urgent", "limited", "exclusive", "now"}
	authorityWords = []string{"expert", "doctor", "certified", "professional"}
	lonelinessWord = []string{"lonely", "single", "isolated", "struggling"}
)
