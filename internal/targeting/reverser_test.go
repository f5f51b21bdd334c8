package targeting

import (
	"math"
	"reflect"
	"testing"

	"github.com/spacesedan/psychprint/internal/models"
)

func TestReverseTraitsFromSegment(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		BehavioralSegments: []string{"neuroticism_0.9_AcmeLoans"},
	}

	traits := r.ReverseTraits(tp)

	if want := (0.9 + 1.0) / 2.0; math.Abs(traits.Neuroticism-want) > 1e-9 {
		t.Fatalf("neuroticism = %v, want %v", traits.Neuroticism, want)
	}
	if got := traits.Confidence[models.TraitNeuroticism]; math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("neuroticism confidence = %v, want 0.1", got)
	}
	if traits.Openness != 0 || traits.Confidence[models.TraitOpenness] != 0 {
		t.Fatalf("openness should stay at zero without evidence, got %v conf %v",
			traits.Openness, traits.Confidence[models.TraitOpenness])
	}
}

func TestReverseTraitsFromInterest(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		InferredInterests: map[string]float64{"Travel Destinations": 1.0},
	}

	traits := r.ReverseTraits(tp)

	if want := (0.9 + 1.0) / 2.0; math.Abs(traits.Openness-want) > 1e-9 {
		t.Fatalf("openness = %v, want %v", traits.Openness, want)
	}
	if want := (0.7 + 1.0) / 2.0; math.Abs(traits.Extraversion-want) > 1e-9 {
		t.Fatalf("extraversion = %v, want %v", traits.Extraversion, want)
	}
}

func TestReverseTraitsMultiMatchEvidenceIsStable(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		// Touches both the "travel" and "technology" interest rows.
		InferredInterests: map[string]float64{"travel technology": 1.0},
		// Touches "art", "travel" and "frequent_travelers" at once.
		TargetingCategories: []string{"frequent travelers who love art"},
	}

	first := r.ReverseTraits(tp)
	for i := 0; i < 100; i++ {
		if got := r.ReverseTraits(tp); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}

	// Interest resolution takes the first matching keyword in sorted order,
	// so "technology" wins over "travel"; the category merge ends at
	// {openness 0.9, agreeableness 0.6, extraversion 0.7}.
	wantOpenness := ((0.8+0.9)/2 + 1.0) / 2.0
	if math.Abs(first.Openness-wantOpenness) > 1e-9 {
		t.Fatalf("openness = %v, want %v", first.Openness, wantOpenness)
	}
	if want := (0.6 + 1.0) / 2.0; math.Abs(first.Conscientiousness-want) > 1e-9 {
		t.Fatalf("conscientiousness = %v, want %v", first.Conscientiousness, want)
	}
	if want := (0.7 + 1.0) / 2.0; math.Abs(first.Extraversion-want) > 1e-9 {
		t.Fatalf("extraversion = %v, want %v", first.Extraversion, want)
	}
	if want := (0.6 + 1.0) / 2.0; math.Abs(first.Agreeableness-want) > 1e-9 {
		t.Fatalf("agreeableness = %v, want %v", first.Agreeableness, want)
	}
}

func TestReverseTraitsEmptyProfile(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	traits := r.ReverseTraits(models.TargetingProfile{})

	for _, name := range models.TraitNames {
		if traits.Get(name) != 0 {
			t.Fatalf("%s = %v, want 0 for empty profile", name, traits.Get(name))
		}
		if traits.Confidence[name] != 0 {
			t.Fatalf("%s confidence = %v, want 0 for empty profile", name, traits.Confidence[name])
		}
	}
}

func TestBuildProfile(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	ads := models.AdsData{
		Topics: []string{"Travel"},
		Audiences: []models.CustomAudience{
			{Advertiser: "Creative Arts Studio"},
			{Advertiser: "QuickLoan Payday"},
		},
		Interactions: []models.AdInteraction{
			{Advertiser: "ShopCo", Action: "click"},
			{Advertiser: "ShopCo", Action: "click"},
		},
		OtherCategories: []string{
			"interested in travel",
			"behavioral: online shoppers",
			"age 25-34",
		},
	}

	tp := r.BuildProfile(ads)

	if got := tp.InferredInterests["Travel"]; got != 1.0 {
		t.Fatalf("interest confidence = %v, want 1.0", got)
	}
	if len(tp.BehavioralSegments) != 1 || tp.BehavioralSegments[0] != "openness_0.8_Creative Arts Studio" {
		t.Fatalf("segments = %v, want the single openness segment", tp.BehavioralSegments)
	}
	if len(tp.VulnerabilityWindows) != 1 {
		t.Fatalf("got %d vulnerability windows, want 1", len(tp.VulnerabilityWindows))
	}
	window := tp.VulnerabilityWindows[0]
	if window.Description != "financial_vulnerability_targeting_by_QuickLoan Payday" {
		t.Fatalf("window description = %q", window.Description)
	}
	if window.Timestamp != nil {
		t.Fatalf("audience-derived windows must carry no timestamp")
	}
	if got := tp.EngagementPatterns["ShopCo_click"]; got != 2 {
		t.Fatalf("engagement count = %v, want 2", got)
	}

	wantCategories := []string{
		"interests:interested in travel",
		"behaviors:behavioral: online shoppers",
		"demographics:age 25-34",
	}
	if len(tp.TargetingCategories) != len(wantCategories) {
		t.Fatalf("categories = %v, want %v", tp.TargetingCategories, wantCategories)
	}
	for i, want := range wantCategories {
		if tp.TargetingCategories[i] != want {
			t.Fatalf("category %d = %q, want %q", i, tp.TargetingCategories[i], want)
		}
	}
}

func TestVulnerabilitiesFromSegmentKeyword(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		BehavioralSegments: []string{"neuroticism_0.9_AcmeLoans"},
	}

	vulns := r.Vulnerabilities(tp)
	if len(vulns) != 1 {
		t.Fatalf("got %d vulnerabilities, want 1: %+v", len(vulns), vulns)
	}
	v := vulns[0]
	if v.Type != models.VulnFinancial {
		t.Fatalf("type = %v, want %v", v.Type, models.VulnFinancial)
	}
	if v.Severity != 0.8 {
		t.Fatalf("severity = %v, want 0.8", v.Severity)
	}
	if len(v.Evidence) != 1 || v.Evidence[0] != "Targeted via segment: neuroticism_0.9_AcmeLoans" {
		t.Fatalf("evidence = %v", v.Evidence)
	}
}

func TestVulnerabilitiesKeepRecordsPerEvidence(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		InferredInterests: map[string]float64{
			"debt relief":     1.0,
			"payday shortcut": 1.0,
		},
	}

	vulns := r.Vulnerabilities(tp)
	if len(vulns) != 2 {
		t.Fatalf("got %d vulnerabilities, want one record per evidence item", len(vulns))
	}
	for _, v := range vulns {
		if v.Type != models.VulnFinancial {
			t.Fatalf("type = %v, want %v", v.Type, models.VulnFinancial)
		}
	}
}

func TestSusceptibilityThresholds(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	actual := models.OceanTraits{
		Openness:          0.8,
		Conscientiousness: 0.3,
		Extraversion:      0.8,
		Agreeableness:     0.8,
		Neuroticism:       0.7,
	}

	s := r.Susceptibility(models.TargetingProfile{}, actual)

	want := map[string]float64{
		models.TacticEmotionalManipulation: 0.4,
		models.TacticSocialProof:           0.4,
		models.TacticScarcity:              0.3,
		models.TacticPersonalizationBias:   0.3,
		models.TacticAuthorityAppeals:      0.3,
	}
	for tactic, score := range want {
		if math.Abs(s[tactic]-score) > 1e-9 {
			t.Fatalf("%s = %v, want %v", tactic, s[tactic], score)
		}
	}
}

func TestSusceptibilityThresholdsAreStrict(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	actual := models.OceanTraits{Neuroticism: 0.6, Extraversion: 0.7, Conscientiousness: 0.4}

	s := r.Susceptibility(models.TargetingProfile{}, actual)
	for tactic, score := range s {
		if score != 0 {
			t.Fatalf("%s = %v, want 0 at exact thresholds", tactic, score)
		}
	}
}

func TestSusceptibilityEngagementBonus(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		EngagementPatterns: map[string]int{"emotional_support_click": 5},
	}

	s := r.Susceptibility(tp, models.OceanTraits{Neuroticism: 0.7})
	if want := 0.4 + 0.5*0.2; math.Abs(s[models.TacticEmotionalManipulation]-want) > 1e-9 {
		t.Fatalf("emotional manipulation = %v, want %v", s[models.TacticEmotionalManipulation], want)
	}
}

func TestSusceptibilityCappedAtOne(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		EngagementPatterns: map[string]int{
			"emotional_a": 100,
			"emotional_b": 100,
			"emotional_c": 100,
			"emotional_d": 100,
		},
	}

	s := r.Susceptibility(tp, models.OceanTraits{Neuroticism: 0.9})
	if s[models.TacticEmotionalManipulation] != 1.0 {
		t.Fatalf("emotional manipulation = %v, want capped at 1.0", s[models.TacticEmotionalManipulation])
	}
}

func TestTacticsBuckets(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		VulnerabilityWindows: []models.VulnerabilityWindow{
			{Description: "emotional_vulnerability_targeting_by_TherapyNow"},
			{Description: "financial_vulnerability_targeting_by_QuickLoan"},
		},
		EngagementPatterns: map[string]int{
			"anxiety_content_click": 6,
			"social_event_click":    6,
			"news_view":             20,
		},
		TargetingCategories: []string{
			"demographics:limited time offers",
			"demographics:certified expert advice",
			"demographics:single and struggling",
		},
	}

	tactics := r.Tactics(tp)

	if got := len(tactics[models.TacticEmotionalManipulation]); got != 2 {
		t.Fatalf("emotional manipulation evidence = %d items, want 2", got)
	}
	if got := len(tactics[models.TacticVulnerabilityExploit]); got != 2 {
		t.Fatalf("vulnerability exploitation evidence = %d items, want 2", got)
	}
	if got := len(tactics[models.TacticSocialPressure]); got != 1 {
		t.Fatalf("social pressure evidence = %d items, want 1", got)
	}
	if got := len(tactics[models.TacticScarcity]); got != 1 {
		t.Fatalf("scarcity evidence = %d items, want 1", got)
	}
	if got := len(tactics[models.TacticAuthorityAppeals]); got != 1 {
		t.Fatalf("authority appeals evidence = %d items, want 1", got)
	}
}

func TestTacticsIgnoreLowEngagement(t *testing.T) {
	r := NewReverser(DefaultPsychologyMap())
	tp := models.TargetingProfile{
		EngagementPatterns: map[string]int{"anxiety_content_click": 5},
	}

	tactics := r.Tactics(tp)
	if got := len(tactics[models.TacticEmotionalManipulation]); got != 0 {
		t.Fatalf("engagement at the threshold should not count, got %d items", got)
	}
}
