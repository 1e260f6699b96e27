package archetype

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Archetype
		ok   bool
	}{
		{"driver", Driver, true},
		{"Driver", Driver, true},
		{"  SPARK ", Spark, true},
		{"anchor", Anchor, true},
		{"ANALYST", Analyst, true},
		{"", "", false},
		{"visionary", "", false},
		{"driver ", Driver, true},
	}
	for _, c := range cases {
		got, ok := Parse(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAllOrder(t *testing.T) {
	want := []Archetype{Driver, Spark, Anchor, Analyst}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d archetypes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseLanguage(t *testing.T) {
	if got := ParseLanguage("en"); got != LangEN {
		t.Errorf("ParseLanguage(en) = %q", got)
	}
	if got := ParseLanguage("EN"); got != LangEN {
		t.Errorf("ParseLanguage(EN) = %q", got)
	}
	// Unknown codes fall back to Indonesian.
	for _, in := range []string{"id", "", "fr", "xx"} {
		if got := ParseLanguage(in); got != LangID {
			t.Errorf("ParseLanguage(%q) = %q, want %q", in, got, LangID)
		}
	}
}

func TestProfilesComplete(t *testing.T) {
	for _, a := range All() {
		for _, lang := range Languages() {
			p := a.ProfileFor(lang)
			if p.Name == "" {
				t.Errorf("%s/%s: empty name", a, lang)
			}
			if p.Summary == "" {
				t.Errorf("%s/%s: empty summary", a, lang)
			}
			if p.Color == "" || p.BgColor == "" {
				t.Errorf("%s/%s: missing colors", a, lang)
			}
			if len(p.Strengths) == 0 || len(p.Blindspots) == 0 ||
				len(p.UnderStress) == 0 || len(p.CommunicationTips) == 0 {
				t.Errorf("%s/%s: incomplete narrative lists", a, lang)
			}
		}
	}
}
