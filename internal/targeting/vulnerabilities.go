package targeting

import (
	"sort"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// matchedVulnSeverity is the flat severity given to every keyword-matched
// vulnerability. Being targeted for a weakness at all is read as serious.
const matchedVulnSeverity = 0.8

// Vulnerabilities scans the platform-targeting evidence for the
// vulnerability keyword table. Each match yields one record; records for
// the same type are not deduplicated, keeping evidence one-to-one.
func (r *Reverser) Vulnerabilities(tp models.TargetingProfile) []models.Vulnerability {
	var vulnerabilities []models.Vulnerability

	evidence := collectEvidence(tp)

	for _, vulnType := range vulnerabilityTypeOrder {
		keywords := VulnerabilityKeywords[vulnType]
		for _, item := range evidence {
			lower := strings.ToLower(item.text)
			for _, keyword := range keywords {
				if strings.Contains(lower, keyword) {
					vulnerabilities = append(vulnerabilities, models.Vulnerability{
						Type:     vulnType,
						Severity: matchedVulnSeverity,
						Triggers: []string{keyword},
						Evidence: []string{item.describe()},
					})
					break
				}
			}
		}
	}

	return vulnerabilities
}

type evidenceItem struct {
	kind string
	text string
}

func (e evidenceItem) describe() string {
	return "Targeted via " + e.kind + ": " + e.text
}

// collectEvidence flattens the profile into scannable strings in
// deterministic order.
func collectEvidence(tp models.TargetingProfile) []evidenceItem {
	var items []evidenceItem

	interests := make([]string, 0, len(tp.InferredInterests))
	for interest := range tp.InferredInterests {
		interests = append(interests, interest)
	}
	sort.Strings(interests)
	for _, interest := range interests {
		items = append(items, evidenceItem{kind: "interest", text: interest})
	}

	for _, segment := range tp.BehavioralSegments {
		items = append(items, evidenceItem{kind: "segment", text: segment})
	}
	for _, category := range tp.TargetingCategories {
		items = append(items, evidenceItem{kind: "category", text: category})
	}
	for _, window := range tp.VulnerabilityWindows {
		items = append(items, evidenceItem{kind: "window", text: window.Description})
	}

	return items
}
