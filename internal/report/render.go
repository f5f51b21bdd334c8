package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// MarshalProfile serializes a profile as indented JSON. Timestamps render as
// RFC 3339 strings, absent ones as null.
func MarshalProfile(profile *models.CompleteProfile) ([]byte, error) {
	return json.MarshalIndent(profile, "", "  ")
}

// WriteJSON writes the serialized profile to path.
func WriteJSON(profile *models.CompleteProfile, path string) error {
	data, err := MarshalProfile(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}

// Summary renders the human-readable console report.
func Summary(profile *models.CompleteProfile) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(&b, "%s\nDIGITAL PSYCHOMETRICS ANALYSIS SUMMARY\n%s\n", rule, rule)

	b.WriteString("\nPERSONALITY ANALYSIS (OCEAN TRAITS)\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, name := range models.TraitNames {
		score := profile.OceanTraits.Get(name)
		fmt.Fprintf(&b, "%-17s |%s| %.2f\n", titleCase(name), traitBar(score), score)
	}

	b.WriteString("\nPLATFORM ASSESSMENT vs TEXT ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, name := range models.TraitNames {
		platform := profile.PlatformTraits.Get(name)
		actual := profile.OceanTraits.Get(name)
		fmt.Fprintf(&b, "%-17s | platform: %.2f | actual: %.2f | %s\n",
			titleCase(name), platform, actual, agreementMark(platform, actual))
	}

	b.WriteString("\nVULNERABILITY ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	if len(profile.Vulnerabilities) == 0 {
		b.WriteString("No significant vulnerabilities identified\n")
	}
	for _, vuln := range profile.Vulnerabilities {
		fmt.Fprintf(&b, "[%s] %s: %.2f\n",
			riskLevel(vuln.Severity), titleCase(string(vuln.Type)), vuln.Severity)
	}

	b.WriteString("\nMANIPULATION SUSCEPTIBILITY\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, tactic := range sortedKeys(profile.Susceptibility) {
		score := profile.Susceptibility[tactic]
		fmt.Fprintf(&b, "  %s: %.2f (%s)\n", titleCase(tactic), score, riskLevel(score))
	}

	b.WriteString("\nKEY PROTECTIVE RECOMMENDATIONS\n")
	b.WriteString(strings.Repeat("-", 35) + "\n")
	shown := len(profile.Recommendations)
	if shown > 5 {
		shown = 5
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&b, "%d. %s\n", i+1, profile.Recommendations[i])
	}
	if rest := len(profile.Recommendations) - shown; rest > 0 {
		fmt.Fprintf(&b, "   ... and %d more recommendations\n", rest)
	}

	b.WriteString("\nANALYSIS CONFIDENCE\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, key := range sortedKeys(profile.ConfidenceScores) {
		fmt.Fprintf(&b, "  %s: %.2f\n", titleCase(key), profile.ConfidenceScores[key])
	}

	return b.String()
}

// traitBar renders a 20-slot score bar.
func traitBar(score float64) string {
	filled := int(score * 20)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", 20-filled)
}

func riskLevel(score float64) string {
	switch {
	case score > 0.7:
		return "HIGH"
	case score > 0.4:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func agreementMark(platform, actual float64) string {
	diff := platform - actual
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff < 0.2:
		return "match"
	case diff < 0.4:
		return "drift"
	default:
		return "mismatch"
	}
}

// titleCase turns snake_case keys into display labels.
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
