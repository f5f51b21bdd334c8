package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/spacesedan/psychprint/internal/models"
)

func TestRecommendationsThresholdIsStrict(t *testing.T) {
	s := NewSynthesizer()
	susceptibility := map[string]float64{
		models.TacticEmotionalManipulation: 0.6,
		models.TacticSocialProof:           0.61,
	}

	out := s.Recommendations(susceptibility, nil, nil, models.OceanTraits{})

	if len(out) != 2 {
		t.Fatalf("got %d strategies, want 2: %v", len(out), out)
	}
	for _, line := range out {
		if strings.Contains(line, "emotion") {
			t.Fatalf("emotional strategies should not fire at exactly 0.6: %q", line)
		}
	}
}

func TestRecommendationsOrder(t *testing.T) {
	s := NewSynthesizer()
	susceptibility := map[string]float64{models.TacticEmotionalManipulation: 0.8}
	tactics := map[string][]string{
		models.TacticVulnerabilityExploit: {"Exploited financial stress: financial_vulnerability_targeting_by_QuickLoan"},
	}
	vulnerabilities := []models.Vulnerability{
		{Type: models.VulnFinancial, Severity: 0.8},
	}
	actual := models.OceanTraits{Neuroticism: 0.8, Openness: 0.9}

	out := s.Recommendations(susceptibility, tactics, vulnerabilities, actual)

	want := []string{
		"Implement emotional decision-making delays: Wait 24 hours before acting on emotionally charged content",
		"Create emotional state awareness check: Ask 'How am I feeling right now?' before engaging with ads",
		"Vulnerability protection: Avoid decision-making during stressful periods",
		"Create support networks: Have trusted people to consult during vulnerable times",
		"Implement financial decision waiting periods",
		"Monitor anxiety-inducing content exposure",
		"Be cautious of novelty-based marketing manipulation",
	}
	if len(out) != len(want) {
		t.Fatalf("got %d strategies, want %d: %v", len(out), len(want), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("strategy %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestRecommendationsTraitWarningsAreStrict(t *testing.T) {
	s := NewSynthesizer()
	actual := models.OceanTraits{Neuroticism: 0.7, Openness: 0.8}

	out := s.Recommendations(nil, nil, nil, actual)
	if len(out) != 0 {
		t.Fatalf("trait warnings should not fire at exact thresholds, got %v", out)
	}
}

func TestProtectionPlanDeduplicatesByType(t *testing.T) {
	s := NewSynthesizer()
	vulnerabilities := []models.Vulnerability{
		{Type: models.VulnFinancial, Severity: 0.8},
		{Type: models.VulnFinancial, Severity: 0.8},
		{Type: models.VulnEmotional, Severity: 0.8},
	}

	plan := s.ProtectionPlan(vulnerabilities)
	if len(plan) != 2 {
		t.Fatalf("got %d plan entries, want 2: %v", len(plan), plan)
	}
	if steps := plan[string(models.VulnFinancial)]; len(steps) != 2 {
		t.Fatalf("financial steps = %v, want 2 steps", steps)
	}
}

func TestProtectionPlanSkipsUnknownTypes(t *testing.T) {
	s := NewSynthesizer()
	plan := s.ProtectionPlan([]models.Vulnerability{
		{Type: models.VulnProfessional, Severity: 0.8},
	})
	if len(plan) != 0 {
		t.Fatalf("unknown types should yield no steps, got %v", plan)
	}
}

func TestExploitationPressure(t *testing.T) {
	s := NewSynthesizer()
	vulnerabilities := []models.Vulnerability{
		{Type: models.VulnFinancial, Severity: 0.8},
		{Type: models.VulnFinancial, Severity: 0.8},
		{Type: models.VulnEmotional, Severity: 0.5},
	}
	engagement := map[string]int{"ShopCo_click": 10}

	pressure := s.ExploitationPressure(vulnerabilities, engagement)

	if want := 0.8*0.2*2 + 0.2; math.Abs(pressure[string(models.VulnFinancial)]-want) > 1e-9 {
		t.Fatalf("financial pressure = %v, want %v", pressure[string(models.VulnFinancial)], want)
	}
	if want := 0.5*0.2 + 0.2; math.Abs(pressure[string(models.VulnEmotional)]-want) > 1e-9 {
		t.Fatalf("emotional pressure = %v, want %v", pressure[string(models.VulnEmotional)], want)
	}
}

func TestExploitationPressureEngagementCapped(t *testing.T) {
	s := NewSynthesizer()
	vulnerabilities := []models.Vulnerability{{Type: models.VulnSocial, Severity: 0.5}}
	engagement := map[string]int{"a": 500}

	pressure := s.ExploitationPressure(vulnerabilities, engagement)
	if want := 0.5*0.2 + 0.3; math.Abs(pressure[string(models.VulnSocial)]-want) > 1e-9 {
		t.Fatalf("social pressure = %v, want engagement term capped at 0.3", pressure[string(models.VulnSocial)])
	}
}

func TestExploitationPressureNoVulnerabilities(t *testing.T) {
	s := NewSynthesizer()
	pressure := s.ExploitationPressure(nil, map[string]int{"a": 100})
	if len(pressure) != 0 {
		t.Fatalf("engagement alone should not create pressure entries, got %v", pressure)
	}
}
