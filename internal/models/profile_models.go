package models

import "time"

// Confidence score keys in CompleteProfile.ConfidenceScores.
const (
	ConfidenceOverall         = "overall_confidence"
	ConfidencePersonality     = "personality_confidence"
	ConfidenceVulnerability   = "vulnerability_confidence"
	ConfidencePlatformProfile = "platform_profile_confidence"
)

// CompleteProfile is the terminal, immutable result of one pipeline run.
// Every analysis field is a pure function of the export contents; RunID and
// AnalyzedAt are run metadata drawn from the pipeline's injectable run-id
// generator and clock, and are the only fields that differ between two runs
// over the same export.
type CompleteProfile struct {
	RunID      string    `json:"run_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`
	ExportPath string    `json:"export_path,omitempty"`

	// Two parallel OCEAN estimates: one from the subject's own text and
	// behavior, one reverse-mapped from the platform's targeting data.
	OceanTraits    OceanTraits `json:"ocean_traits"`
	PlatformTraits OceanTraits `json:"platform_inferred_traits"`

	Targeting TargetingProfile      `json:"targeting_profile"`
	Social    SocialBehaviorProfile `json:"social_behavior"`

	EmotionalTimeline   []EmotionalState     `json:"emotional_timeline"`
	MoodVolatility      float64              `json:"mood_volatility"`
	SentimentBaseline   float64              `json:"sentiment_baseline"`
	ManipulationWindows []ManipulationWindow `json:"manipulation_windows"`
	VolatilityFlags     []string             `json:"volatility_flags"`
	Resilience          ResilienceMetrics    `json:"resilience_metrics"`

	Vulnerabilities      []Vulnerability     `json:"vulnerabilities"`
	Susceptibility       map[string]float64  `json:"manipulation_susceptibility"`
	Tactics              map[string][]string `json:"manipulation_tactics"`
	ProtectionPlan       map[string][]string `json:"protection_plan"`
	ExploitationPressure map[string]float64  `json:"exploitation_pressure"`

	// Discrepancy between the platform's assessment and the text-derived
	// traits. The default comparator emits placeholder constants until a
	// calibrated mapping exists.
	Discrepancy map[string]float64 `json:"platform_vs_actual_discrepancy"`

	Recommendations []string `json:"protective_recommendations"`

	ConfidenceScores map[string]float64 `json:"confidence_scores"`

	// Optional narrative summary from the external collaborator. A failed
	// call surfaces here without invalidating any other field.
	Narrative      string `json:"narrative,omitempty"`
	NarrativeError string `json:"narrative_error,omitempty"`
}
