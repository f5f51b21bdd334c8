package models

import "time"

// BehaviorVector is one time-sliced snapshot of cognition, affect and
// conation. Cognitive and conative maps are shared across the whole corpus;
// only the affective map varies per timeline entry. That reuse is a known
// approximation, not a per-slice measurement.
type BehaviorVector struct {
	Cognitive  map[string]float64 `json:"cognitive"`
	Affective  map[string]float64 `json:"affective"`
	Conative   map[string]float64 `json:"conative"`
	Timestamp  *time.Time         `json:"timestamp"`
	Confidence float64            `json:"confidence"`
}

// Canonical OCEAN trait names, also used as map keys throughout.
const (
	TraitOpenness          = "openness"
	TraitConscientiousness = "conscientiousness"
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitNeuroticism       = "neuroticism"
)

// TraitNames lists the five traits in canonical order.
var TraitNames = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// OceanTraits is one Big Five personality estimate, each dimension in [0,1].
// Zero values with an empty Confidence map mean "no contributing evidence",
// which is a documented low-confidence condition rather than an error.
type OceanTraits struct {
	Openness          float64            `json:"openness"`
	Conscientiousness float64            `json:"conscientiousness"`
	Extraversion      float64            `json:"extraversion"`
	Agreeableness     float64            `json:"agreeableness"`
	Neuroticism       float64            `json:"neuroticism"`
	Confidence        map[string]float64 `json:"confidence,omitempty"`
}

// Get returns one trait by canonical name.
func (t OceanTraits) Get(name string) float64 {
	switch name {
	case TraitOpenness:
		return t.Openness
	case TraitConscientiousness:
		return t.Conscientiousness
	case TraitExtraversion:
		return t.Extraversion
	case TraitAgreeableness:
		return t.Agreeableness
	case TraitNeuroticism:
		return t.Neuroticism
	}
	return 0
}

// Set assigns one trait by canonical name; unknown names are ignored.
func (t *OceanTraits) Set(name string, v float64) {
	switch name {
	case TraitOpenness:
		t.Openness = v
	case TraitConscientiousness:
		t.Conscientiousness = v
	case TraitExtraversion:
		t.Extraversion = v
	case TraitAgreeableness:
		t.Agreeableness = v
	case TraitNeuroticism:
		t.Neuroticism = v
	}
}
