package affect

import (
	"math"
	"testing"
	"time"

	"github.com/spacesedan/psychprint/internal/models"
	"github.com/spacesedan/psychprint/internal/signals"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func extract(t *testing.T, text string) models.EmotionIndicators {
	t.Helper()
	return signals.NewExtractor(signals.DefaultEmotionTable()).Extract(text)
}

func TestBuildNeutralTextGivesZeroValence(t *testing.T) {
	b := NewBuilder(fixedClock)
	entry := b.Build(models.TextRecord{Text: "the meeting is at noon", Kind: models.SourceMessage},
		extract(t, "the meeting is at noon"))

	if entry.State.Valence != 0 {
		t.Fatalf("valence = %v, want 0 for text with no emotional signal", entry.State.Valence)
	}
}

func TestBuildPositiveHighArousalMessage(t *testing.T) {
	b := NewBuilder(fixedClock)
	text := "I am so happy and excited!!!"
	entry := b.Build(models.TextRecord{Text: text, Kind: models.SourceMessage}, extract(t, text))

	if entry.State.Valence <= 0.5 {
		t.Fatalf("valence = %v, want > 0.5", entry.State.Valence)
	}
	if entry.State.Arousal <= 0 {
		t.Fatalf("arousal = %v, want > 0", entry.State.Arousal)
	}
}

func TestBuildBounds(t *testing.T) {
	b := NewBuilder(fixedClock)
	texts := []string{
		"HAPPY HAPPY JOY LOVE AMAZING WONDERFUL GREAT!!!",
		"sad awful terrible depressed worried anxious alone!!!",
		"???",
	}
	for _, text := range texts {
		entry := b.Build(models.TextRecord{Text: text, Kind: models.SourcePost}, extract(t, text))
		s := entry.State
		if s.Valence < -1 || s.Valence > 1 {
			t.Fatalf("valence %v out of [-1,1] for %q", s.Valence, text)
		}
		if s.Arousal < 0 || s.Arousal > 1 {
			t.Fatalf("arousal %v out of [0,1] for %q", s.Arousal, text)
		}
		if s.Dominance < 0 || s.Dominance > 1 {
			t.Fatalf("dominance %v out of [0,1] for %q", s.Dominance, text)
		}
	}
}

func TestBuildDominancePostBonus(t *testing.T) {
	b := NewBuilder(fixedClock)
	text := "announcing a thing"
	ind := extract(t, text)

	asMessage := b.Build(models.TextRecord{Text: text, Kind: models.SourceMessage}, ind)
	asPost := b.Build(models.TextRecord{Text: text, Kind: models.SourcePost}, ind)

	diff := asPost.State.Dominance - asMessage.State.Dominance
	if math.Abs(diff-0.3) > 1e-9 {
		t.Fatalf("post dominance bonus = %v, want 0.3", diff)
	}
	if asPost.Features[FeatPublicExpression] != 1.0 {
		t.Fatalf("post public expression = %v, want 1.0", asPost.Features[FeatPublicExpression])
	}
	if _, ok := asMessage.Features[FeatPublicExpression]; ok {
		t.Fatalf("message carries public expression feature")
	}
}

func TestBuildQuestionPenaltyOnDominance(t *testing.T) {
	b := NewBuilder(fixedClock)
	plain := "tell me something about it"
	asking := "tell me? something? about? it?"

	p := b.Build(models.TextRecord{Text: plain, Kind: models.SourceMessage}, extract(t, plain))
	q := b.Build(models.TextRecord{Text: asking, Kind: models.SourceMessage}, extract(t, asking))

	if q.State.Dominance >= p.State.Dominance {
		t.Fatalf("questions did not lower dominance: %v >= %v", q.State.Dominance, p.State.Dominance)
	}
}

func TestBuildInvalidTimestampFallsBackToClock(t *testing.T) {
	b := NewBuilder(fixedClock)
	entry := b.Build(models.TextRecord{Text: "hi", Kind: models.SourceMessage, TimestampInvalid: true},
		extract(t, "hi"))

	if entry.State.Timestamp == nil || !entry.State.Timestamp.Equal(fixedNow) {
		t.Fatalf("timestamp = %v, want clock fallback %v", entry.State.Timestamp, fixedNow)
	}
}

func TestBuildAbsentTimestampStaysNil(t *testing.T) {
	b := NewBuilder(fixedClock)
	entry := b.Build(models.TextRecord{Text: "hi", Kind: models.SourceMessage}, extract(t, "hi"))

	if entry.State.Timestamp != nil {
		t.Fatalf("timestamp = %v, want nil for absent timestamp", entry.State.Timestamp)
	}
}

func TestSortTimelineNilTimestampsFirst(t *testing.T) {
	later := fixedNow.Add(time.Hour)
	entries := []Entry{
		{State: models.EmotionalState{Timestamp: &later}},
		{State: models.EmotionalState{Timestamp: nil}},
		{State: models.EmotionalState{Timestamp: &fixedNow}},
	}
	SortTimeline(entries)

	if entries[0].State.Timestamp != nil {
		t.Fatalf("nil timestamp did not sort first")
	}
	if !entries[1].State.Timestamp.Equal(fixedNow) || !entries[2].State.Timestamp.Equal(later) {
		t.Fatalf("dated entries out of order: %v, %v", entries[1].State.Timestamp, entries[2].State.Timestamp)
	}
}

func TestBuildCarriesSentiment(t *testing.T) {
	b := NewBuilder(fixedClock)
	text := "I am so happy and excited!!!"
	ind := extract(t, text)
	entry := b.Build(models.TextRecord{Text: text, Kind: models.SourceMessage}, ind)

	if entry.State.Sentiment != ind.VaderCompound {
		t.Fatalf("sentiment = %v, want the extractor's compound %v",
			entry.State.Sentiment, ind.VaderCompound)
	}
	if entry.State.Sentiment <= 0 {
		t.Fatalf("sentiment = %v, want > 0 for positive text", entry.State.Sentiment)
	}
}

func TestSentimentBaseline(t *testing.T) {
	if got := SentimentBaseline(nil); got != 0 {
		t.Fatalf("baseline = %v, want 0 for an empty timeline", got)
	}

	timeline := []models.EmotionalState{
		{Sentiment: 0.6},
		{Sentiment: -0.2},
		{Sentiment: 0.2},
	}
	if want := 0.2; math.Abs(SentimentBaseline(timeline)-want) > 1e-9 {
		t.Fatalf("baseline = %v, want %v", SentimentBaseline(timeline), want)
	}
}
