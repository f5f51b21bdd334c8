package affect

import (
	"math"
	"testing"
	"time"

	"github.com/spacesedan/psychprint/internal/models"
)

func TestResilienceShortTimelineDefaults(t *testing.T) {
	a := NewAnalyzer(DefaultWindowTable())

	for _, timeline := range [][]models.EmotionalState{nil, {stateAt(fixedNow, 0.2, 0.2)}} {
		m := a.Resilience(timeline)
		if m.EmotionalStability != 0.5 || m.RecoverySpeed != 0.5 || m.OverallResilience != 0.5 {
			t.Fatalf("short timeline metrics = %+v, want all 0.5", m)
		}
	}
}

func TestResilienceSteadyTimeline(t *testing.T) {
	a := NewAnalyzer(DefaultWindowTable())

	var timeline []models.EmotionalState
	for i := 0; i < 4; i++ {
		timeline = append(timeline, stateAt(fixedNow.Add(time.Duration(i)*time.Hour), 0.5, 0.3))
	}
	m := a.Resilience(timeline)

	if m.EmotionalStability != 1.0 {
		t.Fatalf("stability = %v, want 1.0 for a flat timeline", m.EmotionalStability)
	}
	if m.RecoverySpeed != 0.5 {
		t.Fatalf("recovery = %v, want neutral 0.5 with no negative periods", m.RecoverySpeed)
	}
	if want := 1.0*0.6 + 0.5*0.4; math.Abs(m.OverallResilience-want) > 1e-9 {
		t.Fatalf("overall = %v, want %v", m.OverallResilience, want)
	}
}

func TestResilienceVolatileBelowSteady(t *testing.T) {
	a := NewAnalyzer(DefaultWindowTable())

	var volatile, steady []models.EmotionalState
	for i := 0; i < 6; i++ {
		v := 0.8
		if i%2 == 1 {
			v = -0.8
		}
		ts := fixedNow.Add(time.Duration(i) * time.Hour)
		volatile = append(volatile, stateAt(ts, v, 0.3))
		steady = append(steady, stateAt(ts, 0.2, 0.3))
	}

	if vr, sr := a.Resilience(volatile), a.Resilience(steady); vr.OverallResilience >= sr.OverallResilience {
		t.Fatalf("volatile resilience %v not below steady %v",
			vr.OverallResilience, sr.OverallResilience)
	}
}

func TestResilienceRecoverySpeed(t *testing.T) {
	a := NewAnalyzer(DefaultWindowTable())

	// One negative dip recovering after exactly 24 hours.
	timeline := []models.EmotionalState{
		stateAt(fixedNow, -0.5, 0.2),
		stateAt(fixedNow.Add(24*time.Hour), 0.5, 0.2),
	}
	m := a.Resilience(timeline)

	if want := 1.0 - 24.0/168.0; math.Abs(m.RecoverySpeed-want) > 1e-9 {
		t.Fatalf("recovery = %v, want %v", m.RecoverySpeed, want)
	}
}

func TestMoodVolatility(t *testing.T) {
	if MoodVolatility(nil) != 0 {
		t.Fatalf("empty timeline volatility not zero")
	}

	timeline := []models.EmotionalState{
		stateAt(fixedNow, 0.0, 0),
		stateAt(fixedNow.Add(time.Hour), 0.4, 0),
		stateAt(fixedNow.Add(2*time.Hour), -0.2, 0),
	}
	if got, want := MoodVolatility(timeline), (0.4+0.6)/2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("volatility = %v, want %v", got, want)
	}
}
