package signals

// EmotionCategory is one row of the fixed emotion-detection table: a keyword
// list, an emoji list, and punctuation-intensity multipliers keyed by the
// marker substring.
type EmotionCategory struct {
	Keywords    []string
	Emoji       []string
	Multipliers map[string]float64
}

// EmotionTable maps category name to its detection patterns. Tables are
// plain data injected at extractor construction so tests can substitute
// their own.
type EmotionTable map[string]EmotionCategory

// Canonical emotion category names.
const (
	EmotionPositive   = "positive"
	EmotionNegative   = "negative"
	EmotionAnxiety    = "anxiety"
	EmotionLoneliness = "loneliness"
)

// DefaultEmotionTable returns the stock detection table.
func DefaultEmotionTable() EmotionTable {
	return EmotionTable{
		EmotionPositive: {
			Keywords:    []string{"happy", "joy", "excited", "great", "awesome", "love", "wonderful", "amazing"},
			Emoji:       []string{"😊", "😄", "🎉", "❤️", "😍", "🥰"},
			Multipliers: map[string]float64{"!": 1.2, "!!": 1.5, "!!!": 2.0},
		},
		EmotionNegative: {
			Keywords:    []string{"sad", "angry", "frustrated", "hate", "terrible", "awful", "depressed", "upset"},
			Emoji:       []string{"😢", "😭", "😠", "😡", "💔", "😞"},
			Multipliers: map[string]float64{"!": 1.2, "!!": 1.5, "!!!": 2.0},
		},
		EmotionAnxiety: {
			Keywords:    []string{"worried", "anxious", "nervous", "stress", "overwhelmed", "panic", "scared"},
			Emoji:       []string{"😰", "😨", "😟", "😧"},
			Multipliers: map[string]float64{"!": 1.3, "!!": 1.6, "!!!": 2.2},
		},
		EmotionLoneliness: {
			Keywords:    []string{"alone", "lonely", "isolated", "empty", "nobody", "abandoned"},
			Emoji:       []string{"😔", "💔", "😢"},
			Multipliers: map[string]float64{"!": 1.4, "!!": 1.7, "!!!": 2.3},
		},
	}
}

// Coarse word buckets reused by later stages as raw hit counts.
var (
	defaultPositiveWords = []string{"happy", "good", "great", "awesome", "love", "amazing", "wonderful"}
	defaultNegativeWords = []string{"sad", "bad", "terrible", "hate", "angry", "frustrated", "upset"}
	defaultAnxietyWords  = []string{"worried", "anxious", "stressed", "nervous", "scared", "afraid"}
)
