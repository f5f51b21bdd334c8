package signals

import (
	"strings"
	"unicode"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/psychprint/internal/models"
)

// Extractor turns one text fragment into a set of numeric emotion
// indicators. It is stateless across calls; the keyword tables are fixed at
// construction.
type Extractor struct {
	table    EmotionTable
	positive []string
	negative []string
	anxiety  []string
	vader    *govader.SentimentIntensityAnalyzer
}

// NewExtractor builds an extractor around the given emotion table.
func NewExtractor(table EmotionTable) *Extractor {
	return &Extractor{
		table:    table,
		positive: defaultPositiveWords,
		negative: defaultNegativeWords,
		anxiety:  defaultAnxietyWords,
		vader:    govader.NewSentimentIntensityAnalyzer(),
	}
}

// Extract computes emotion indicators for a text fragment. URLs are stripped
// before any measurement so link targets never count toward caps or length,
// and the VADER pass runs over a markdown-flattened copy of the text. Empty
// text yields a zero indicator set, never an error.
func (e *Extractor) Extract(text string) models.EmotionIndicators {
	ind := models.EmotionIndicators{Emotions: map[string]float64{}}
	text = RemoveLinks(text)
	if strings.TrimSpace(text) == "" {
		return ind
	}

	lower := strings.ToLower(text)

	for name, cat := range e.table {
		score := 0.0
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				score += 1.0
			}
		}
		for _, em := range cat.Emoji {
			score += 0.5 * float64(strings.Count(text, em))
		}
		// Only the strongest punctuation marker present applies; "!!!"
		// subsumes "!!" and "!".
		score *= strongestMultiplier(text, cat.Multipliers)
		ind.Emotions[name] = clamp01(score / 3.0)
	}

	runes := []rune(text)
	runeLen := len(runes)
	caps := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			caps++
		}
	}

	ind.Length = runeLen
	ind.WordCount = len(strings.Fields(text))
	ind.ExclamationCount = strings.Count(text, "!")
	ind.QuestionCount = strings.Count(text, "?")
	ind.ExclamationRatio = float64(ind.ExclamationCount) / float64(max(1, runeLen))
	ind.QuestionRatio = float64(ind.QuestionCount) / float64(max(1, runeLen))
	ind.CapsRatio = float64(caps) / float64(max(1, runeLen))

	ind.PositiveHits = countHits(lower, e.positive)
	ind.NegativeHits = countHits(lower, e.negative)
	ind.AnxietyHits = countHits(lower, e.anxiety)

	if plain := MarkdownToText(text); plain != "" {
		ind.VaderCompound = e.vader.PolarityScores(plain).Compound
	}

	return ind
}

// strongestMultiplier returns the factor for the longest marker substring
// found in the text, 1.0 when none match.
func strongestMultiplier(text string, multipliers map[string]float64) float64 {
	best := 1.0
	bestLen := 0
	for marker, factor := range multipliers {
		if strings.Contains(text, marker) && len(marker) > bestLen {
			best = factor
			bestLen = len(marker)
		}
	}
	return best
}

func countHits(lower string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	return hits
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
