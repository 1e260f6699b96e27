package compatibility

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
)

func TestValidateCompleteness(t *testing.T) {
	if err := validate(); err != nil {
		t.Fatalf("matrix incomplete: %v", err)
	}
	// 10 canonical records: 4 same-pair + 6 cross-pair, no reversed
	// duplicates stored.
	if len(matrix) != 10 {
		t.Errorf("matrix holds %d records, want 10", len(matrix))
	}
}

func TestLookupSymmetry(t *testing.T) {
	order := archetype.All()
	for _, lang := range archetype.Languages() {
		for _, a := range order {
			for _, b := range order {
				ab, err := Lookup(a, b, lang)
				if err != nil {
					t.Fatalf("Lookup(%s,%s,%s): %v", a, b, lang, err)
				}
				ba, err := Lookup(b, a, lang)
				if err != nil {
					t.Fatalf("Lookup(%s,%s,%s): %v", b, a, lang, err)
				}
				if ab.Score != ba.Score {
					t.Errorf("%s/%s score asymmetric: %d vs %d", a, b, ab.Score, ba.Score)
				}
				if ab.Energy != ba.Energy {
					t.Errorf("%s/%s energy asymmetric: %q vs %q", a, b, ab.Energy, ba.Energy)
				}
				if ab.Title != ba.Title || ab.Summary != ba.Summary {
					t.Errorf("%s/%s narrative differs by argument order", a, b)
				}
			}
		}
	}
}

func TestLookupSparkAnchor(t *testing.T) {
	v, err := Lookup(archetype.Spark, archetype.Anchor, archetype.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	if v.Score != 90 || v.Energy != "harmonious" {
		t.Errorf("spark/anchor = %d %q, want 90 harmonious", v.Score, v.Energy)
	}

	rev, err := Lookup(archetype.Anchor, archetype.Spark, archetype.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	if rev.Score != 90 || rev.Energy != "harmonious" {
		t.Errorf("anchor/spark = %d %q, want 90 harmonious", rev.Score, rev.Energy)
	}
}

func TestLookupLanguageProjection(t *testing.T) {
	id, err := Lookup(archetype.Driver, archetype.Driver, archetype.LangID)
	if err != nil {
		t.Fatal(err)
	}
	en, err := Lookup(archetype.Driver, archetype.Driver, archetype.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	if id.Title != "Duo Dinamis" {
		t.Errorf("id title = %q", id.Title)
	}
	if en.Title != "Dynamic Duo" {
		t.Errorf("en title = %q", en.Title)
	}
	if id.Score != en.Score || id.Energy != en.Energy {
		t.Error("score/energy must not vary by language")
	}
}

func TestLookupNamesValidation(t *testing.T) {
	if _, err := LookupNames("driver", "unicorn", archetype.LangID); !errors.Is(err, ErrInvalidArchetype) {
		t.Errorf("err = %v, want ErrInvalidArchetype", err)
	}
	if _, err := LookupNames("", "spark", archetype.LangID); !errors.Is(err, ErrInvalidArchetype) {
		t.Errorf("err = %v, want ErrInvalidArchetype", err)
	}
	v, err := LookupNames("SPARK", "Anchor", archetype.LangEN)
	if err != nil {
		t.Fatalf("mixed-case names rejected: %v", err)
	}
	if v.Score != 90 {
		t.Errorf("score = %d, want 90", v.Score)
	}
}

func TestRankForOrder(t *testing.T) {
	ranked, err := RankFor(archetype.Driver, archetype.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 4 {
		t.Fatalf("ranked %d rows, want 4", len(ranked))
	}
	// driver pairs: spark 85, anchor 75, analyst 70, driver 65.
	wantOrder := []archetype.Archetype{archetype.Spark, archetype.Anchor, archetype.Analyst, archetype.Driver}
	for i, w := range wantOrder {
		if ranked[i].With != w {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].With, w)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}

func TestRankForTieBreak(t *testing.T) {
	// analyst pairs: driver 70, spark 60, anchor 70, analyst 75. The two
	// 70s must keep canonical order (driver before anchor) on every run.
	first, err := RankFor(archetype.Analyst, archetype.LangID)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].With != archetype.Analyst {
		t.Errorf("rank 0 = %s, want analyst (75)", first[0].With)
	}
	if first[1].With != archetype.Driver || first[2].With != archetype.Anchor {
		t.Errorf("tied 70s ordered %s,%s, want driver,anchor", first[1].With, first[2].With)
	}
	for i := 0; i < 25; i++ {
		again, err := RankFor(archetype.Analyst, archetype.LangID)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestRankForNameValidation(t *testing.T) {
	if _, err := RankForName("oracle", archetype.LangID); !errors.Is(err, ErrInvalidArchetype) {
		t.Errorf("err = %v, want ErrInvalidArchetype", err)
	}
}

func TestMatrixSummary(t *testing.T) {
	rows := MatrixSummary()
	if len(rows) != 4 {
		t.Fatalf("%d rows, want 4", len(rows))
	}
	for _, row := range rows {
		if len(row.Compatibilities) != 4 {
			t.Errorf("row %s has %d cells, want 4", row.Archetype, len(row.Compatibilities))
		}
	}
	// Spot-check symmetry through the summary as well.
	var driverRow, sparkRow MatrixRow
	for _, row := range rows {
		switch row.Archetype {
		case archetype.Driver:
			driverRow = row
		case archetype.Spark:
			sparkRow = row
		}
	}
	if driverRow.Compatibilities[archetype.Spark] != sparkRow.Compatibilities[archetype.Driver] {
		t.Error("matrix summary asymmetric for driver/spark")
	}
}
