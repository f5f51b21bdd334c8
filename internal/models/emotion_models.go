package models

import "time"

// EmotionIndicators is the per-record numeric signal set produced by the
// signal extractor. Emotions holds one normalized [0,1] score per configured
// emotion category; the remaining fields are raw text-shape measurements that
// later stages combine in their own formulas.
type EmotionIndicators struct {
	Emotions map[string]float64 `json:"emotions"`

	ExclamationCount int     `json:"exclamation_count"`
	ExclamationRatio float64 `json:"exclamation_ratio"`
	QuestionCount    int     `json:"question_count"`
	QuestionRatio    float64 `json:"question_ratio"`
	CapsRatio        float64 `json:"caps_ratio"`
	Length           int     `json:"length"`
	WordCount        int     `json:"word_count"`

	PositiveHits int `json:"positive_hits"`
	NegativeHits int `json:"negative_hits"`
	AnxietyHits  int `json:"anxiety_hits"`

	// VaderCompound is an independent lexical sentiment baseline in [-1,1].
	// It never feeds the fixed VAD formulas; it is reported alongside them.
	VaderCompound float64 `json:"vader_compound"`
}

// Emotion returns the normalized score for one category, zero when absent.
func (e EmotionIndicators) Emotion(name string) float64 {
	return e.Emotions[name]
}

// EmotionalState is one point on the affect timeline in the VAD model.
// Valence is signed; arousal and dominance are clamped to [0,1]. Sentiment
// is the VADER compound score for the same text, in [-1,1].
type EmotionalState struct {
	Valence   float64    `json:"valence"`
	Arousal   float64    `json:"arousal"`
	Dominance float64    `json:"dominance"`
	Sentiment float64    `json:"sentiment"`
	Timestamp *time.Time `json:"timestamp"`
	Kind      SourceKind `json:"kind"`
}

// ManipulationWindow is one timeline point whose accumulated vulnerability
// score crossed the reporting threshold.
type ManipulationWindow struct {
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Score     float64   `json:"score"`
}

// ResilienceMetrics summarizes how quickly the subject absorbs and recovers
// from negative emotional swings.
type ResilienceMetrics struct {
	EmotionalStability float64 `json:"emotional_stability"`
	RecoverySpeed      float64 `json:"recovery_speed"`
	OverallResilience  float64 `json:"overall_resilience"`
}
