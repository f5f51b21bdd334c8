package behavior

// ValueTable maps a targeting-category keyword to the personal values it
// implies and their strengths. Summed per value across all matching
// categories.
type ValueTable map[string]map[string]float64

// DefaultValueTable returns the stock keyword-to-value inference table.
func DefaultValueTable() ValueTable {
	return ValueTable{
		"family":  {"family_oriented": 0.8, "traditional": 0.6},
		"career":  {"achievement": 0.8, "success_oriented": 0.7},
		"travel":  {"openness": 0.8, "experience_seeking": 0.9},
		"charity": {"altruism": 0.9, "social_responsibility": 0.8},
		"luxury":  {"materialism": 0.7, "status_seeking": 0.8},
		"health":  {"self_care": 0.8, "wellness_focused": 0.7},
	}
}
