// Package report runs the full analysis over one export and assembles the
// terminal profile, then renders it for people and machines.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/psychprint/internal/affect"
	"github.com/spacesedan/psychprint/internal/behavior"
	"github.com/spacesedan/psychprint/internal/models"
	"github.com/spacesedan/psychprint/internal/recommend"
	"github.com/spacesedan/psychprint/internal/signals"
	"github.com/spacesedan/psychprint/internal/targeting"
	"github.com/spacesedan/psychprint/internal/traits"
)

// DocumentSource provides the parsed contents of one export.
type DocumentSource interface {
	Available(models.Category) bool
	Records(models.Category) []models.TextRecord
	Ads() models.AdsData
	Conversations() []models.ConversationStats
	HelpSeekingCount() int
	Social() models.SocialBehaviorProfile
}

// DiscrepancyFunc compares the platform's trait estimate with the
// text-derived one.
type DiscrepancyFunc func(platform, actual models.OceanTraits) map[string]float64

// placeholderDiscrepancy stands in until a calibrated mapping between
// targeting categories and trait scales exists.
func placeholderDiscrepancy(platform, actual models.OceanTraits) map[string]float64 {
	return map[string]float64{
		"overall_accuracy": 0.7,
		"targeting_bias":   0.3,
	}
}

// Pipeline wires every analysis stage together. All stages are
// deterministic; the only ambient inputs are the clock and the run-id
// generator, both injectable. With both fixed, two runs over the same
// export are byte-identical; with the defaults, only the RunID and
// AnalyzedAt metadata differ.
type Pipeline struct {
	extractor   *signals.Extractor
	builder     *affect.Builder
	analyzer    *affect.Analyzer
	aggregator  *behavior.Aggregator
	estimator   *traits.Estimator
	reverser    *targeting.Reverser
	synthesizer *recommend.Synthesizer

	discrepancy DiscrepancyFunc
	summarizer  Summarizer
	prompt      string
	now         func() time.Time
	newRunID    func() string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSummarizer attaches an optional narrative generator and its system
// prompt.
func WithSummarizer(s Summarizer, prompt string) Option {
	return func(p *Pipeline) {
		p.summarizer = s
		p.prompt = prompt
	}
}

// WithClock overrides the analysis-time clock.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithRunID overrides run-id generation.
func WithRunID(fn func() string) Option {
	return func(p *Pipeline) { p.newRunID = fn }
}

// WithDiscrepancy replaces the placeholder trait comparator.
func WithDiscrepancy(fn DiscrepancyFunc) Option {
	return func(p *Pipeline) { p.discrepancy = fn }
}

// NewPipeline builds a pipeline with the default tables and stages.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		now:         time.Now,
		newRunID:    uuid.NewString,
		discrepancy: placeholderDiscrepancy,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.extractor = signals.NewExtractor(signals.DefaultEmotionTable())
	p.builder = affect.NewBuilder(p.now)
	p.analyzer = affect.NewAnalyzer(affect.DefaultWindowTable())
	p.aggregator = behavior.NewAggregator(behavior.DefaultValueTable())
	p.estimator = traits.NewEstimator()
	p.reverser = targeting.NewReverser(targeting.DefaultPsychologyMap())
	p.synthesizer = recommend.NewSynthesizer()
	return p
}

// Run executes every stage over one export. Missing categories degrade
// confidence, they never abort the run; the only errors are context
// cancellation.
func (p *Pipeline) Run(ctx context.Context, src DocumentSource) (*models.CompleteProfile, error) {
	slog.Info("[Pipeline] Starting profile analysis")

	profile := &models.CompleteProfile{
		RunID:      p.newRunID(),
		AnalyzedAt: p.now().UTC(),
	}

	// Platform side: reverse-map the advertising evidence.
	profile.Targeting = p.reverser.BuildProfile(src.Ads())
	profile.PlatformTraits = p.reverser.ReverseTraits(profile.Targeting)
	profile.Vulnerabilities = p.reverser.Vulnerabilities(profile.Targeting)
	profile.Tactics = p.reverser.Tactics(profile.Targeting)

	// Subject side: affective states from the subject's own text.
	var records []models.TextRecord
	records = append(records, src.Records(models.CategoryMessages)...)
	records = append(records, src.Records(models.CategoryPosts)...)

	entries := make([]affect.Entry, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries = append(entries, p.builder.Build(rec, p.extractor.Extract(rec.Text)))
	}
	affect.SortTimeline(entries)

	timeline := make([]models.EmotionalState, 0, len(entries))
	for _, e := range entries {
		timeline = append(timeline, e.State)
	}
	profile.EmotionalTimeline = timeline
	profile.MoodVolatility = affect.MoodVolatility(timeline)
	profile.SentimentBaseline = affect.SentimentBaseline(timeline)
	profile.ManipulationWindows = p.analyzer.Windows(timeline)
	profile.VolatilityFlags = p.analyzer.VolatilityFlags(timeline)
	profile.Resilience = p.analyzer.Resilience(timeline)

	cognitive := p.aggregator.Cognitive(profile.Targeting)
	conative := p.aggregator.Conative(
		src.Conversations(), src.HelpSeekingCount(), profile.Targeting.EngagementPatterns)
	vectors := p.aggregator.Vectors(cognitive, conative, entries)
	profile.OceanTraits = p.estimator.Estimate(vectors)

	profile.Social = src.Social()
	profile.Susceptibility = p.reverser.Susceptibility(profile.Targeting, profile.OceanTraits)
	profile.Discrepancy = p.discrepancy(profile.PlatformTraits, profile.OceanTraits)
	profile.Recommendations = p.synthesizer.Recommendations(
		profile.Susceptibility, profile.Tactics, profile.Vulnerabilities, profile.OceanTraits)
	profile.ProtectionPlan = p.synthesizer.ProtectionPlan(profile.Vulnerabilities)
	profile.ExploitationPressure = p.synthesizer.ExploitationPressure(
		profile.Vulnerabilities, profile.Targeting.EngagementPatterns)
	profile.ConfidenceScores = p.confidenceScores(src, profile)

	if p.summarizer != nil {
		p.summarize(ctx, profile)
	}

	slog.Info("[Pipeline] Profile analysis complete",
		slog.String("run_id", profile.RunID),
		slog.Int("timeline_points", len(timeline)),
		slog.Int("vulnerabilities", len(profile.Vulnerabilities)))
	return profile, nil
}

// confidenceScores derives per-component confidence from data completeness
// and evidence presence.
func (p *Pipeline) confidenceScores(src DocumentSource, profile *models.CompleteProfile) map[string]float64 {
	present := 0
	for _, cat := range models.ExpectedCategories {
		if src.Available(cat) {
			present++
		}
	}

	scores := map[string]float64{
		models.ConfidenceOverall:         float64(present) / float64(len(models.ExpectedCategories)) * 0.8,
		models.ConfidencePersonality:     0,
		models.ConfidenceVulnerability:   0,
		models.ConfidencePlatformProfile: 0,
	}
	if len(profile.EmotionalTimeline) > 0 {
		scores[models.ConfidencePersonality] = 0.7
	}
	if len(profile.Vulnerabilities) > 0 {
		scores[models.ConfidenceVulnerability] = 0.8
	}
	if !profile.Targeting.Empty() {
		scores[models.ConfidencePlatformProfile] = 0.9
	}
	return scores
}

// summarize asks the collaborator for a narrative. Failures land in
// NarrativeError; partial text received before a failure is kept.
func (p *Pipeline) summarize(ctx context.Context, profile *models.CompleteProfile) {
	corpus, err := MarshalProfile(profile)
	if err != nil {
		profile.NarrativeError = err.Error()
		return
	}

	text, err := p.summarizer.Summarize(ctx, p.prompt, string(corpus))
	if err != nil {
		profile.NarrativeError = err.Error()
		slog.Warn("[Pipeline] Narrative generation failed",
			slog.String("error", err.Error()))
	}
	profile.Narrative = text
}
