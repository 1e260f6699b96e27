// Package compatibility resolves static pairwise compatibility records for
// the four communication archetypes. The table is embedded, loaded once and
// never mutated; lookups are pure projections into the requested language
// and safe for concurrent use.
package compatibility

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
)

var (
	// ErrInvalidArchetype marks a caller error: a name that is not one of
	// the four archetypes was passed to a name-based lookup.
	ErrInvalidArchetype = errors.New("invalid archetype")

	// ErrPairNotFound should be unreachable for the fixed taxonomy; seeing
	// it at runtime means the embedded table was damaged.
	ErrPairNotFound = errors.New("compatibility pair not found")
)

// View is one pair record projected into a single language.
type View struct {
	Pair       string              `json:"pair"`
	Archetype1 archetype.Archetype `json:"archetype1"`
	Archetype2 archetype.Archetype `json:"archetype2"`
	Score      int                 `json:"compatibility_score"`
	Energy     string              `json:"energy"`
	Title      string              `json:"title"`
	Summary    string              `json:"summary"`
	Strengths  []string            `json:"strengths"`
	Challenges []string            `json:"challenges"`
	Tips       []string            `json:"tips"`
}

// Ranked is one row of RankFor output.
type Ranked struct {
	With    archetype.Archetype `json:"with_archetype"`
	Score   int                 `json:"compatibility_score"`
	Energy  string              `json:"energy"`
	Title   string              `json:"title"`
	Summary string              `json:"summary"`
}

// MatrixCell is the summary projection used by the public matrix endpoint.
type MatrixCell struct {
	Score  int    `json:"score"`
	Energy string `json:"energy"`
}

// MatrixRow lists one archetype's cells against all four archetypes.
type MatrixRow struct {
	Archetype       archetype.Archetype                   `json:"archetype"`
	Compatibilities map[archetype.Archetype]MatrixCell `json:"compatibilities"`
}

func pairKey(a, b archetype.Archetype) string {
	return string(a) + "_" + string(b)
}

// resolve finds the backing record for an unordered pair: caller order
// first, then reversed.
func resolve(a, b archetype.Archetype) (record, error) {
	if r, ok := matrix[pairKey(a, b)]; ok {
		return r, nil
	}
	if r, ok := matrix[pairKey(b, a)]; ok {
		return r, nil
	}
	return record{}, fmt.Errorf("%w: %s/%s", ErrPairNotFound, a, b)
}

func (l localized) pick(lang archetype.Language) string {
	if lang == archetype.LangEN {
		return l.en
	}
	return l.id
}

func (l localizedList) pick(lang archetype.Language) []string {
	src := l.id
	if lang == archetype.LangEN {
		src = l.en
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Lookup returns the pair record in the requested language. Score and
// energy are identical whichever way the arguments are ordered.
func Lookup(a, b archetype.Archetype, lang archetype.Language) (View, error) {
	r, err := resolve(a, b)
	if err != nil {
		return View{}, err
	}
	return View{
		Pair:       pairKey(a, b),
		Archetype1: a,
		Archetype2: b,
		Score:      r.score,
		Energy:     r.energy,
		Title:      r.title.pick(lang),
		Summary:    r.summary.pick(lang),
		Strengths:  r.strengths.pick(lang),
		Challenges: r.challenges.pick(lang),
		Tips:       r.tips.pick(lang),
	}, nil
}

// LookupNames is Lookup with string validation for the HTTP layer. Bad names
// are a caller error, not a table problem.
func LookupNames(a, b string, lang archetype.Language) (View, error) {
	first, ok := archetype.Parse(a)
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrInvalidArchetype, a)
	}
	second, ok := archetype.Parse(b)
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrInvalidArchetype, b)
	}
	return Lookup(first, second, lang)
}

// RankFor returns the archetype's pairings with all four archetypes
// (including itself), best score first. Ties fall back to the canonical
// archetype order so the ranking is reproducible.
func RankFor(a archetype.Archetype, lang archetype.Language) ([]Ranked, error) {
	order := archetype.All()
	out := make([]Ranked, 0, len(order))
	for _, other := range order {
		v, err := Lookup(a, other, lang)
		if err != nil {
			return nil, err
		}
		out = append(out, Ranked{
			With:    other,
			Score:   v.Score,
			Energy:  v.Energy,
			Title:   v.Title,
			Summary: v.Summary,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// RankForName is RankFor with string validation for the HTTP layer.
func RankForName(name string, lang archetype.Language) ([]Ranked, error) {
	a, ok := archetype.Parse(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidArchetype, name)
	}
	return RankFor(a, lang)
}

// MatrixSummary builds the 4x4 score/energy grid.
func MatrixSummary() []MatrixRow {
	order := archetype.All()
	rows := make([]MatrixRow, 0, len(order))
	for _, a := range order {
		row := MatrixRow{
			Archetype:       a,
			Compatibilities: make(map[archetype.Archetype]MatrixCell, len(order)),
		}
		for _, b := range order {
			r, err := resolve(a, b)
			if err != nil {
				continue
			}
			row.Compatibilities[b] = MatrixCell{Score: r.score, Energy: r.energy}
		}
		rows = append(rows, row)
	}
	return rows
}

// validate asserts the configuration-completeness invariant: every unordered
// combination resolves, with narrative content present for both languages.
func validate() error {
	order := archetype.All()
	for i, a := range order {
		for _, b := range order[i:] {
			r, err := resolve(a, b)
			if err != nil {
				return err
			}
			for _, lang := range archetype.Languages() {
				if r.title.pick(lang) == "" || r.summary.pick(lang) == "" {
					return fmt.Errorf("compatibility record %s/%s missing %s narrative", a, b, lang)
				}
				if len(r.strengths.pick(lang)) == 0 || len(r.challenges.pick(lang)) == 0 || len(r.tips.pick(lang)) == 0 {
					return fmt.Errorf("compatibility record %s/%s missing %s lists", a, b, lang)
				}
			}
			if r.score < 0 || r.score > 100 {
				return fmt.Errorf("compatibility record %s/%s score %d out of range", a, b, r.score)
			}
		}
	}
	return nil
}

func init() {
	// The table is compiled in; an incomplete one is a build defect, not a
	// runtime condition to recover from.
	if err := validate(); err != nil {
		panic(err)
	}
}
