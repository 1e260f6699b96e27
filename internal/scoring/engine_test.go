package scoring

import (
	"reflect"
	"testing"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
)

func noStress(string) bool { return false }

func answersOf(labels ...string) []Answer {
	out := make([]Answer, len(labels))
	for i, l := range labels {
		out[i] = Answer{QuestionID: "q" + string(rune('a'+i)), SelectedOption: l}
	}
	return out
}

func TestScoreBasicScenario(t *testing.T) {
	// 2 driver, 2 spark, no stress markers.
	r := Score(answersOf("driver", "driver", "spark", "spark"), noStress)

	want := map[archetype.Archetype]int{
		archetype.Driver: 2, archetype.Spark: 2,
		archetype.Anchor: 0, archetype.Analyst: 0,
	}
	if !reflect.DeepEqual(r.Scores, want) {
		t.Errorf("scores = %v, want %v", r.Scores, want)
	}
	if r.Primary != archetype.Driver || r.Secondary != archetype.Spark {
		t.Errorf("primary/secondary = %s/%s, want driver/spark", r.Primary, r.Secondary)
	}
	if r.BalanceIndex != 0.5 {
		t.Errorf("balance = %v, want 0.5", r.BalanceIndex)
	}
	if r.StressFlag {
		t.Error("stress flag raised without stress markers")
	}
}

func TestScoreZeroAnswers(t *testing.T) {
	r := Score(nil, noStress)

	for _, a := range archetype.All() {
		if r.Scores[a] != 0 {
			t.Errorf("score[%s] = %d, want 0", a, r.Scores[a])
		}
	}
	if r.Primary != archetype.Driver || r.Secondary != archetype.Spark {
		t.Errorf("primary/secondary = %s/%s, want driver/spark (canonical order)", r.Primary, r.Secondary)
	}
	if r.BalanceIndex != 0 {
		t.Errorf("balance = %v, want 0", r.BalanceIndex)
	}
	if r.StressFlag {
		t.Error("stress flag raised for empty attempt")
	}
}

func TestScoreIgnoresUnrecognizedLabels(t *testing.T) {
	r := Score(answersOf("driver", "wizard", "", "ANCHOR", "legacy_option"), noStress)

	if r.Scores[archetype.Driver] != 1 || r.Scores[archetype.Anchor] != 1 {
		t.Errorf("scores = %v, want driver:1 anchor:1", r.Scores)
	}
	if r.Scores[archetype.Spark] != 0 || r.Scores[archetype.Analyst] != 0 {
		t.Errorf("unrecognized labels leaked into counts: %v", r.Scores)
	}
	// Denominator counts every submitted answer, recognized or not.
	if r.BalanceIndex != 0.2 {
		t.Errorf("balance = %v, want 0.2", r.BalanceIndex)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	r := Score(answersOf("Driver", "SPARK", "Anchor", "analyst"), noStress)
	for _, a := range archetype.All() {
		if r.Scores[a] != 1 {
			t.Errorf("score[%s] = %d, want 1", a, r.Scores[a])
		}
	}
	if r.BalanceIndex != 0 {
		t.Errorf("balance = %v, want 0 for even spread", r.BalanceIndex)
	}
}

func TestScoreTieBreakStability(t *testing.T) {
	// anchor and analyst tie at 2; spark and driver tie at 0.
	answers := answersOf("anchor", "analyst", "anchor", "analyst")
	for i := 0; i < 50; i++ {
		r := Score(answers, noStress)
		if r.Primary != archetype.Anchor || r.Secondary != archetype.Analyst {
			t.Fatalf("run %d: primary/secondary = %s/%s, want anchor/analyst", i, r.Primary, r.Secondary)
		}
	}
}

func TestScoreDeterminism(t *testing.T) {
	answers := answersOf("driver", "spark", "driver", "anchor", "nonsense", "analyst", "driver")
	stress := func(id string) bool { return id == "qa" || id == "qc" }

	first := Score(answers, stress)
	for i := 0; i < 20; i++ {
		if got := Score(answers, stress); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestStressFlagThreshold(t *testing.T) {
	allStress := func(string) bool { return true }

	// Two qualifying answers: below threshold.
	r := Score(answersOf("driver", "driver", "spark", "spark", "spark"), allStress)
	if r.StressFlag {
		t.Errorf("stress flag raised at %d markers", r.StressMarkers)
	}
	if r.StressMarkers != 2 {
		t.Errorf("stress markers = %d, want 2", r.StressMarkers)
	}

	// Three qualifying answers: flag flips.
	r = Score(answersOf("driver", "driver", "driver", "spark"), allStress)
	if !r.StressFlag {
		t.Errorf("stress flag not raised at %d markers", r.StressMarkers)
	}
}

func TestStressCountsOnlyDriverAnswers(t *testing.T) {
	// All questions stress-flagged, but no driver selections: no markers.
	r := Score(answersOf("spark", "anchor", "analyst", "spark", "anchor"), func(string) bool { return true })
	if r.StressMarkers != 0 || r.StressFlag {
		t.Errorf("non-driver answers counted as stress markers: %d", r.StressMarkers)
	}

	// Driver selections on unflagged questions: still no markers.
	r = Score(answersOf("driver", "driver", "driver", "driver"), noStress)
	if r.StressMarkers != 0 || r.StressFlag {
		t.Errorf("unflagged questions counted as stress markers: %d", r.StressMarkers)
	}
}

func TestBalanceIndexBounds(t *testing.T) {
	cases := [][]string{
		{"driver"},
		{"driver", "driver", "driver"},
		{"driver", "spark", "anchor", "analyst"},
		{"driver", "driver", "spark", "anchor", "analyst", "analyst", "analyst"},
		{"spark", "junk", "junk", "junk"},
	}
	for _, labels := range cases {
		r := Score(answersOf(labels...), noStress)
		if r.BalanceIndex < 0 || r.BalanceIndex > 1 {
			t.Errorf("balance %v out of [0,1] for %v", r.BalanceIndex, labels)
		}
	}
}

func TestScoreNilStressLookup(t *testing.T) {
	r := Score(answersOf("driver", "driver", "driver"), nil)
	if r.StressMarkers != 0 || r.StressFlag {
		t.Errorf("nil lookup produced stress markers: %d", r.StressMarkers)
	}
}
