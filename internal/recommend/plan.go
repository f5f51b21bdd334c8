package recommend

import "github.com/spacesedan/psychprint/internal/models"

var protectionSteps = map[models.VulnerabilityType][]string{
	models.VulnEmotional: {
		"Schedule regular check-ins on emotional state before online sessions",
		"Mute or unfollow sources that reliably trigger distress",
	},
	models.VulnFinancial: {
		"Remove saved payment methods from social platforms",
		"Adopt a 48-hour rule for any purchase prompted by an ad",
	},
	models.VulnSocial: {
		"Prefer direct contact with friends over feed-mediated interaction",
		"Treat dating and companionship ads as targeting, not coincidence",
	},
	models.VulnHealth: {
		"Never self-diagnose from targeted health content",
		"Bring targeted health claims to a clinician before acting",
	},
}

// ProtectionPlan groups concrete protective steps per identified
// vulnerability type. Duplicate types collapse to one entry.
func (s *Synthesizer) ProtectionPlan(vulnerabilities []models.Vulnerability) map[string][]string {
	plan := map[string][]string{}
	for _, vuln := range vulnerabilities {
		key := string(vuln.Type)
		if _, done := plan[key]; done {
			continue
		}
		if steps, ok := protectionSteps[vuln.Type]; ok {
			plan[key] = steps
		}
	}
	return plan
}

// ExploitationPressure estimates, per vulnerability type, how actively the
// platform leaned on that weakness: evidence volume weighted by severity,
// raised by overall ad engagement, capped at 1.
func (s *Synthesizer) ExploitationPressure(
	vulnerabilities []models.Vulnerability,
	engagement map[string]int,
) map[string]float64 {
	totalEngagement := 0
	for _, count := range engagement {
		totalEngagement += count
	}
	engagementTerm := float64(totalEngagement) / 50.0
	if engagementTerm > 0.3 {
		engagementTerm = 0.3
	}

	pressure := map[string]float64{}
	for _, vuln := range vulnerabilities {
		pressure[string(vuln.Type)] += vuln.Severity * 0.2
	}
	for key := range pressure {
		v := pressure[key] + engagementTerm
		if v > 1 {
			v = 1
		}
		pressure[key] = v
	}

	return pressure
}
