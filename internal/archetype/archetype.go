package archetype

import "strings"

// Archetype is one of the four fixed communication styles. The set is
// closed; values are only ever created through the constants below or Parse.
type Archetype string

const (
	Driver  Archetype = "driver"
	Spark   Archetype = "spark"
	Anchor  Archetype = "anchor"
	Analyst Archetype = "analyst"
)

// All returns the four archetypes in canonical order. This order doubles as
// the deterministic tie-break for rankings; callers must never substitute
// map iteration order for it.
func All() []Archetype {
	return []Archetype{Driver, Spark, Anchor, Analyst}
}

// Parse matches a label case-insensitively against the four archetypes.
// Unknown labels return ok=false; they are never an error at this layer
// because the scoring engine tolerates malformed option labels.
func Parse(s string) (Archetype, bool) {
	switch Archetype(strings.ToLower(strings.TrimSpace(s))) {
	case Driver:
		return Driver, true
	case Spark:
		return Spark, true
	case Anchor:
		return Anchor, true
	case Analyst:
		return Analyst, true
	}
	return "", false
}

func (a Archetype) String() string {
	return string(a)
}

// Language selects which narrative variant of static content is returned.
type Language string

const (
	LangID Language = "id"
	LangEN Language = "en"
)

// Languages returns the supported languages.
func Languages() []Language {
	return []Language{LangID, LangEN}
}

// ParseLanguage normalizes a language code, falling back to Indonesian for
// anything unrecognized.
func ParseLanguage(s string) Language {
	if Language(strings.ToLower(s)) == LangEN {
		return LangEN
	}
	return LangID
}
