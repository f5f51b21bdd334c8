package models

import "time"

// SourceKind tags where a text fragment came from.
type SourceKind string

const (
	SourceMessage SourceKind = "message"
	SourcePost    SourceKind = "post"
	SourceAd      SourceKind = "ad"
)

// Category identifies a group of export documents.
type Category string

const (
	CategoryMessages      Category = "messages"
	CategoryPosts         Category = "posts"
	CategoryAdPreferences Category = "ad_preferences"
	CategoryTargeting     Category = "targeting"
)

// ExpectedCategories is the full set the confidence model expects to find in
// an export. Missing categories reduce overall confidence, they never abort a
// run.
var ExpectedCategories = []Category{
	CategoryMessages,
	CategoryPosts,
	CategoryAdPreferences,
	CategoryTargeting,
}

// TextRecord is one message, post or ad title together with its origin.
// TimestampInvalid marks records whose timestamp field was present but
// unparseable; downstream stages substitute the analysis time for those.
type TextRecord struct {
	Text             string     `json:"text"`
	Kind             SourceKind `json:"kind"`
	Timestamp        *time.Time `json:"timestamp"`
	TimestampInvalid bool       `json:"-"`
}

// AdInteraction is one recorded engagement with an advertiser.
type AdInteraction struct {
	Advertiser string     `json:"advertiser"`
	Action     string     `json:"action"`
	Timestamp  *time.Time `json:"timestamp"`
}

// CustomAudience is one advertiser-uploaded audience the subject appeared in.
type CustomAudience struct {
	Advertiser  string `json:"advertiser"`
	HasDataFile bool   `json:"has_data_file"`
}

// AdsData is the raw advertising evidence pulled from an export before any
// psychological interpretation.
type AdsData struct {
	Topics          []string         `json:"topics"`
	Audiences       []CustomAudience `json:"audiences"`
	Interactions    []AdInteraction  `json:"interactions"`
	OtherCategories []string         `json:"other_categories"`
}

// ConversationStats summarizes one message thread for conative analysis.
type ConversationStats struct {
	UserMessages       int     `json:"user_messages"`
	TotalMessages      int     `json:"total_messages"`
	AvgResponseSeconds float64 `json:"avg_response_seconds"`
}

// SocialBehaviorProfile captures corpus-wide communication patterns.
type SocialBehaviorProfile struct {
	CommunicationFrequency  float64 `json:"communication_frequency"`
	ResponseTimeAvg         float64 `json:"response_time_avg"`
	InitiationRatio         float64 `json:"initiation_ratio"`
	HelpSeekingCount        int     `json:"help_seeking_count"`
	GroupParticipationLevel float64 `json:"group_participation_level"`
}
