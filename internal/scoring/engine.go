// Package scoring turns a finished quiz attempt's answers into archetype
// scores, a primary/secondary classification, a balance index and a stress
// flag. Everything here is a pure function of its inputs: no I/O, no shared
// state, safe to call concurrently and to re-run.
package scoring

import (
	"math"
	"sort"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
)

// StressThreshold is the number of qualifying stress-marker answers at which
// the stress flag flips. Fixed across all series.
const StressThreshold = 3

// Answer is a single forced-choice selection within an attempt.
// SelectedOption carries the archetype label of the chosen option.
type Answer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// Result is the scoring engine's output for one attempt.
type Result struct {
	Scores        map[archetype.Archetype]int `json:"scores"`
	Primary       archetype.Archetype         `json:"primary_archetype"`
	Secondary     archetype.Archetype         `json:"secondary_archetype"`
	BalanceIndex  float64                     `json:"balance_index"`
	StressFlag    bool                        `json:"stress_flag"`
	StressMarkers int                         `json:"stress_markers"`
}

// StressMarkerLookup reports whether a question is flagged as a stress
// marker. Unknown question ids must return false.
type StressMarkerLookup func(questionID string) bool

// Score computes the result for a sequence of answers.
//
// Answers whose label is not one of the four archetypes are ignored rather
// than rejected; malformed or legacy option labels must never abort scoring.
// A stress marker accrues only when the question is stress-flagged AND the
// selected archetype is driver. That coupling is intentional product
// behavior; do not widen it to other archetypes.
//
// An empty answer slice is valid and yields all-zero scores with primary and
// secondary taken from the canonical order. Callers rely on always getting a
// Result back.
func Score(answers []Answer, stressMarker StressMarkerLookup) Result {
	order := archetype.All()

	counts := make(map[archetype.Archetype]int, len(order))
	for _, a := range order {
		counts[a] = 0
	}

	stressMarkers := 0
	for _, ans := range answers {
		arch, ok := archetype.Parse(ans.SelectedOption)
		if !ok {
			continue
		}
		counts[arch]++

		if arch == archetype.Driver && stressMarker != nil && stressMarker(ans.QuestionID) {
			stressMarkers++
		}
	}

	// Rank over the canonical slice, never over map iteration order: the
	// tie-break has to be identical on every run and every machine.
	ranked := make([]archetype.Archetype, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	maxCount := counts[ranked[0]]
	minCount := counts[ranked[len(ranked)-1]]

	total := len(answers)
	if total == 0 {
		total = 1
	}
	balance := round2(float64(maxCount-minCount) / float64(total))

	return Result{
		Scores:        counts,
		Primary:       ranked[0],
		Secondary:     ranked[1],
		BalanceIndex:  balance,
		StressFlag:    stressMarkers >= StressThreshold,
		StressMarkers: stressMarkers,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
