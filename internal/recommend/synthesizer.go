// Package recommend turns trait scores, susceptibility scores and identified
// vulnerabilities into ranked protective strategies. The rules are a fixed,
// ordered list; output order follows rule declaration order and near-
// duplicate lines across rules are left in place.
package recommend

import "github.com/spacesedan/psychprint/internal/models"

// susceptibilityThreshold gates tactic-specific strategies.
const susceptibilityThreshold = 0.6

// susceptibilityRule binds one tactic to its protective strategies.
type susceptibilityRule struct {
	tactic     string
	strategies []string
}

// Declaration order is output order.
var susceptibilityRules = []susceptibilityRule{
	{models.TacticEmotionalManipulation, []string{
		"Implement emotional decision-making delays: Wait 24 hours before acting on emotionally charged content",
		"Create emotional state awareness check: Ask 'How am I feeling right now?' before engaging with ads",
	}},
	{models.TacticSocialProof, []string{
		"Question social validation: Ask 'Do I actually want this, or do I want to fit in?'",
		"Seek diverse perspectives: Actively look for counter-opinions before making decisions",
	}},
	{models.TacticAuthorityAppeals, []string{
		"Verify credentials: Check the actual qualifications of 'experts' in ads",
		"Seek second opinions: Consult multiple sources before trusting authority figures",
	}},
	{models.TacticScarcity, []string{
		"Implement scarcity immunity: Ask 'Will I still want this in a week?'",
		"Research alternatives: Always look for similar options when feeling time pressure",
	}},
	{models.TacticPersonalizationBias, []string{
		"Recognize filter bubbles: Actively seek content outside your usual interests",
		"Question 'perfect' matches: Be suspicious when something seems too perfectly targeted",
	}},
}

var exploitationStrategies = []string{
	"Vulnerability protection: Avoid decision-making during stressful periods",
	"Create support networks: Have trusted people to consult during vulnerable times",
}

var vulnerabilityAdvice = map[models.VulnerabilityType]string{
	models.VulnEmotional: "Be aware of emotional targeting during vulnerable periods",
	models.VulnFinancial: "Implement financial decision waiting periods",
	models.VulnSocial:    "Limit exposure to social-comparison content when feeling isolated",
	models.VulnHealth:    "Verify health claims with a professional before acting on targeted content",
}

// Synthesizer applies the rule list.
type Synthesizer struct{}

// NewSynthesizer returns a recommendation synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Recommendations assembles the ordered strategy list: susceptibility rules
// first, then tactic evidence, then per-vulnerability advice, then extreme-
// trait warnings.
func (s *Synthesizer) Recommendations(
	susceptibility map[string]float64,
	tactics map[string][]string,
	vulnerabilities []models.Vulnerability,
	actual models.OceanTraits,
) []string {
	var out []string

	for _, rule := range susceptibilityRules {
		if susceptibility[rule.tactic] > susceptibilityThreshold {
			out = append(out, rule.strategies...)
		}
	}

	if len(tactics[models.TacticVulnerabilityExploit]) > 0 {
		out = append(out, exploitationStrategies...)
	}

	for _, vuln := range vulnerabilities {
		if advice, ok := vulnerabilityAdvice[vuln.Type]; ok {
			out = append(out, advice)
		}
	}

	if actual.Neuroticism > 0.7 {
		out = append(out, "Monitor anxiety-inducing content exposure")
	}
	if actual.Openness > 0.8 {
		out = append(out, "Be cautious of novelty-based marketing manipulation")
	}

	return out
}
