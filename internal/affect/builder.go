package affect

import (
	"sort"
	"time"

	"github.com/spacesedan/psychprint/internal/models"
	"github.com/spacesedan/psychprint/internal/signals"
)

// Entry couples one emotional state with the affective feature map the
// behavioral aggregator consumes.
type Entry struct {
	State    models.EmotionalState
	Features map[string]float64
}

// Affective feature keys.
const (
	FeatValence          = "valence"
	FeatArousal          = "arousal"
	FeatDominance        = "dominance"
	FeatAnxietyLevel     = "anxiety_level"
	FeatIntensity        = "emotional_intensity"
	FeatPublicExpression = "public_expression_level"
)

// Builder maps emotion indicators into VAD emotional states. The now
// function supplies the fallback timestamp for records whose timestamp field
// was present but unparseable.
type Builder struct {
	now func() time.Time
}

// NewBuilder returns a builder using the given clock for timestamp fallback.
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build derives the emotional state and affective features for one record.
func (b *Builder) Build(rec models.TextRecord, ind models.EmotionIndicators) Entry {
	ts := rec.Timestamp
	if rec.TimestampInvalid {
		t := b.now()
		ts = &t
	}

	state := models.EmotionalState{
		Valence:   valence(ind),
		Arousal:   arousal(ind),
		Dominance: dominance(rec, ind),
		Sentiment: ind.VaderCompound,
		Timestamp: ts,
		Kind:      rec.Kind,
	}

	features := map[string]float64{
		FeatValence:      state.Valence,
		FeatArousal:      state.Arousal,
		FeatDominance:    state.Dominance,
		FeatAnxietyLevel: ind.Emotion(signals.EmotionAnxiety),
		FeatIntensity:    intensity(ind),
	}
	if rec.Kind == models.SourcePost {
		features[FeatPublicExpression] = 1.0
	}

	return Entry{State: state, Features: features}
}

// valence is (positive - negative) / (positive + negative) over the emotion
// scores, where negative folds in anxiety and loneliness. Zero signal means
// neutral valence, never a division error.
func valence(ind models.EmotionIndicators) float64 {
	positive := ind.Emotion(signals.EmotionPositive)
	negative := ind.Emotion(signals.EmotionNegative) +
		ind.Emotion(signals.EmotionAnxiety) +
		ind.Emotion(signals.EmotionLoneliness)

	if positive+negative == 0 {
		return 0.0
	}
	return (positive - negative) / (positive + negative)
}

func arousal(ind models.EmotionIndicators) float64 {
	highArousal := ind.Emotion(signals.EmotionAnxiety) + ind.Emotion(signals.EmotionPositive)*0.7

	textIntensity := clamp01(float64(ind.ExclamationCount)*0.2 + ind.CapsRatio*2)

	return clamp01(highArousal + textIntensity)
}

func dominance(rec models.TextRecord, ind models.EmotionIndicators) float64 {
	lengthFactor := clamp01(float64(ind.Length) / 200.0)
	d := lengthFactor * 0.4

	// Public posts read as more assertive than private messages.
	if rec.Kind == models.SourcePost {
		d += 0.3
	}

	questionRatio := float64(ind.QuestionCount) / float64(maxInt(1, ind.WordCount))
	d -= questionRatio * 0.2

	return clamp01(d)
}

// intensity averages punctuation shouting, caps usage and overall sentiment
// hit volume into one coarse scalar.
func intensity(ind models.EmotionIndicators) float64 {
	hits := float64(ind.PositiveHits + ind.NegativeHits)
	return (ind.ExclamationRatio + ind.CapsRatio + hits) / 3.0
}

// SortTimeline orders entries by timestamp; entries with no timestamp sort
// to the earliest position.
func SortTimeline(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return timeOrEpoch(entries[i].State.Timestamp).Before(timeOrEpoch(entries[j].State.Timestamp))
	})
}

// SortStates orders emotional states the same way SortTimeline does.
func SortStates(states []models.EmotionalState) {
	sort.SliceStable(states, func(i, j int) bool {
		return timeOrEpoch(states[i].Timestamp).Before(timeOrEpoch(states[j].Timestamp))
	})
}

func timeOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
