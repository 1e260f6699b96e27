package database

import "testing"

func TestStressMarkerIndex(t *testing.T) {
	flagged := map[int]bool{0: true, 5: true, 12: true, 18: true}
	for idx := 0; idx < 25; idx++ {
		if got := stressMarkerIndex(idx); got != flagged[idx] {
			t.Errorf("stressMarkerIndex(%d) = %v, want %v", idx, got, flagged[idx])
		}
	}
}

func TestQuestionBankShape(t *testing.T) {
	series := []string{"family", "business", "friendship", "couples"}
	if len(questionBank) != len(series) {
		t.Fatalf("questionBank has %d series, want %d", len(questionBank), len(series))
	}

	for _, s := range series {
		bank, ok := questionBank[s]
		if !ok {
			t.Errorf("questionBank missing series %q", s)
			continue
		}
		if len(bank) != 13 {
			t.Errorf("series %q has %d questions, want 13", s, len(bank))
		}

		for i, q := range bank {
			if q.textID == "" || q.textEN == "" {
				t.Errorf("series %q question %d is missing a translation", s, i)
			}
			if len(q.options) != 4 {
				t.Errorf("series %q question %d has %d options, want 4", s, i, len(q.options))
				continue
			}
			wantOrder := []string{"driver", "spark", "anchor", "analyst"}
			for j, opt := range q.options {
				if opt.Archetype != wantOrder[j] {
					t.Errorf("series %q question %d option %d archetype = %q, want %q", s, i, j, opt.Archetype, wantOrder[j])
				}
				if opt.TextID == "" || opt.TextEN == "" {
					t.Errorf("series %q question %d option %d is missing a translation", s, i, j)
				}
			}
		}

		// With 13 questions, exactly positions 0, 5 and 12 carry stress markers.
		markers := 0
		for idx := range bank {
			if stressMarkerIndex(idx) {
				markers++
			}
		}
		if markers != 3 {
			t.Errorf("series %q has %d stress markers, want 3", s, markers)
		}
	}
}
