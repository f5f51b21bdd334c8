package models

import "time"

// VulnerabilityWindow is one period the platform's own data marks as a
// moment of elevated susceptibility. Timestamps are frequently absent in
// exports; nil means "timing unknown".
type VulnerabilityWindow struct {
	Timestamp   *time.Time `json:"timestamp"`
	Description string     `json:"description"`
}

// TargetingProfile is the platform's own advertising categorization of the
// subject, reconstructed from the export. Read-only once built.
type TargetingProfile struct {
	InferredInterests    map[string]float64    `json:"inferred_interests"`
	BehavioralSegments   []string              `json:"behavioral_segments"`
	TargetingCategories  []string              `json:"targeting_categories"`
	VulnerabilityWindows []VulnerabilityWindow `json:"vulnerability_windows"`
	EngagementPatterns   map[string]int        `json:"engagement_patterns"`
}

// Empty reports whether the profile carries no evidence at all.
func (p TargetingProfile) Empty() bool {
	return len(p.InferredInterests) == 0 &&
		len(p.BehavioralSegments) == 0 &&
		len(p.TargetingCategories) == 0 &&
		len(p.VulnerabilityWindows) == 0 &&
		len(p.EngagementPatterns) == 0
}

// VulnerabilityType tags one class of exploitable psychological weakness.
type VulnerabilityType string

const (
	VulnEmotional    VulnerabilityType = "emotional_vulnerability"
	VulnFinancial    VulnerabilityType = "financial_vulnerability"
	VulnSocial       VulnerabilityType = "social_vulnerability"
	VulnHealth       VulnerabilityType = "health_anxiety"
	VulnProfessional VulnerabilityType = "professional_insecurity"
)

// Vulnerability is one identified exploitable weakness. Records are not
// deduplicated: several pieces of evidence for the same type each yield their
// own record, matching the evidence one-to-one.
type Vulnerability struct {
	Type     VulnerabilityType `json:"type"`
	Severity float64           `json:"severity"`
	Triggers []string          `json:"triggers"`
	Evidence []string          `json:"evidence"`
	Timing   []time.Time       `json:"timing,omitempty"`
}

// Manipulation tactic labels used by the reverse mapper and the synthesizer.
const (
	TacticEmotionalManipulation = "emotional_manipulation"
	TacticSocialProof           = "social_proof"
	TacticSocialPressure        = "social_pressure"
	TacticScarcity              = "scarcity_tactics"
	TacticAuthorityAppeals      = "authority_appeals"
	TacticPersonalizationBias   = "personalization_bias"
	TacticVulnerabilityExploit  = "vulnerability_exploitation"
)
