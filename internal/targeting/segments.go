package targeting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacesedan/psychprint/internal/models"
)

// ErrUnparseableSegment marks a behavioral segment string that does not
// follow the "<trait>_<score>_<advertiser>" format.
var ErrUnparseableSegment = errors.New("unparseable behavioral segment")

// ParsedSegment is one decoded behavioral segment label.
type ParsedSegment struct {
	Trait      string
	Score      float64
	Advertiser string
}

// ParseSegment decodes "<trait>_<score>_<advertiser>". The trait must be a
// canonical OCEAN name and the middle token a float; anything else returns
// ErrUnparseableSegment rather than being silently swallowed.
func ParseSegment(segment string) (ParsedSegment, error) {
	parts := strings.SplitN(segment, "_", 3)
	if len(parts) < 2 {
		return ParsedSegment{}, fmt.Errorf("%w: %q", ErrUnparseableSegment, segment)
	}

	trait := strings.ToLower(parts[0])
	if !isTraitName(trait) {
		return ParsedSegment{}, fmt.Errorf("%w: unknown trait in %q", ErrUnparseableSegment, segment)
	}

	score, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return ParsedSegment{}, fmt.Errorf("%w: bad score in %q", ErrUnparseableSegment, segment)
	}

	parsed := ParsedSegment{Trait: trait, Score: score}
	if len(parts) == 3 {
		parsed.Advertiser = parts[2]
	}
	return parsed, nil
}

func isTraitName(s string) bool {
	for _, name := range models.TraitNames {
		if s == name {
			return true
		}
	}
	return false
}
