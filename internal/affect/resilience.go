package affect

import "github.com/spacesedan/psychprint/internal/models"

// recoveryCapHours caps recovery measurements at one week.
const recoveryCapHours = 168.0

// Resilience computes stability, recovery speed and the combined resilience
// score from a timestamp-ordered timeline. Fewer than two points give the
// neutral default.
func (a *Analyzer) Resilience(timeline []models.EmotionalState) models.ResilienceMetrics {
	if len(timeline) < 2 {
		return models.ResilienceMetrics{
			EmotionalStability: 0.5,
			RecoverySpeed:      0.5,
			OverallResilience:  0.5,
		}
	}

	var valenceVolatility, arousalVolatility float64
	for i := 1; i < len(timeline); i++ {
		valenceVolatility += abs(timeline[i].Valence - timeline[i-1].Valence)
		arousalVolatility += abs(timeline[i].Arousal - timeline[i-1].Arousal)
	}
	n := float64(len(timeline) - 1)
	valenceVolatility /= n
	arousalVolatility /= n

	stability := 1.0 - min1((valenceVolatility+arousalVolatility)/2)

	// Recovery speed: mean hours from each valence < -0.3 point to the next
	// valence > 0 point, capped at a week and inverted so faster recovery
	// scores higher. No recoverable negative period gives the neutral 0.5.
	var recoveryHours []float64
	for i, state := range timeline {
		if state.Valence >= -0.3 || state.Timestamp == nil {
			continue
		}
		for j := i + 1; j < len(timeline); j++ {
			if timeline[j].Valence > 0.0 && timeline[j].Timestamp != nil {
				hours := timeline[j].Timestamp.Sub(*state.Timestamp).Hours()
				if hours > recoveryCapHours {
					hours = recoveryCapHours
				}
				recoveryHours = append(recoveryHours, hours)
				break
			}
		}
	}

	recovery := 0.5
	if len(recoveryHours) > 0 {
		var sum float64
		for _, h := range recoveryHours {
			sum += h
		}
		avg := sum / float64(len(recoveryHours))
		recovery = 1.0 - avg/recoveryCapHours
		if recovery < 0 {
			recovery = 0
		}
	}

	return models.ResilienceMetrics{
		EmotionalStability: stability,
		RecoverySpeed:      recovery,
		OverallResilience:  stability*0.6 + recovery*0.4,
	}
}

// SentimentBaseline is the mean VADER compound score across the timeline,
// zero for an empty timeline.
func SentimentBaseline(timeline []models.EmotionalState) float64 {
	if len(timeline) == 0 {
		return 0.0
	}
	var sum float64
	for _, state := range timeline {
		sum += state.Sentiment
	}
	return sum / float64(len(timeline))
}

// MoodVolatility is the mean absolute valence change across consecutive
// timeline points, zero when the timeline has fewer than two points.
func MoodVolatility(timeline []models.EmotionalState) float64 {
	if len(timeline) < 2 {
		return 0.0
	}
	var sum float64
	for i := 1; i < len(timeline); i++ {
		sum += abs(timeline[i].Valence - timeline[i-1].Valence)
	}
	return sum / float64(len(timeline)-1)
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
