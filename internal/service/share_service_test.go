package service

import (
	"strings"
	"testing"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
)

func TestScoreColor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{90, "#5D8A66"},
		{85, "#5D8A66"},
		{84, "#D99E30"},
		{75, "#D99E30"},
		{74, "#C05640"},
		{65, "#C05640"},
		{64, "#5B8FA8"},
		{0, "#5B8FA8"},
	}
	for _, tt := range tests {
		if got := scoreColor(tt.score); got != tt.want {
			t.Errorf("scoreColor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRenderResultCard(t *testing.T) {
	en := RenderResultCard(archetype.Driver, archetype.Spark, archetype.LangEN)
	for _, want := range []string{
		"My Communication Type",
		"Driver",
		"Spark",
		"#C05640", // driver brand color drives the card accents
		"4colorrelating.com",
	} {
		if !strings.Contains(en, want) {
			t.Errorf("english card missing %q", want)
		}
	}

	id := RenderResultCard(archetype.Driver, archetype.Spark, archetype.LangID)
	for _, want := range []string{
		"Tipe Komunikasi Saya",
		"Penggerak",
		"Percikan",
		"relasi4warna.com",
	} {
		if !strings.Contains(id, want) {
			t.Errorf("indonesian card missing %q", want)
		}
	}

	if !strings.HasPrefix(en, "<svg") || !strings.HasSuffix(strings.TrimSpace(en), "</svg>") {
		t.Error("card is not a well-formed SVG document")
	}
}

func TestRenderCompatibilityCard(t *testing.T) {
	svg, err := RenderCompatibilityCard(archetype.Spark, archetype.Anchor, archetype.LangEN)
	if err != nil {
		t.Fatalf("RenderCompatibilityCard() error = %v", err)
	}

	for _, want := range []string{
		"Communication Compatibility",
		"Spark",
		"Anchor",
		">90<", // spark/anchor pair score
		"Joy & Warmth",
		"#5D8A66", // score >= 85 bucket
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("compatibility card missing %q", want)
		}
	}
}

func TestRenderCompatibilityCardSamePair(t *testing.T) {
	svg, err := RenderCompatibilityCard(archetype.Analyst, archetype.Analyst, archetype.LangID)
	if err != nil {
		t.Fatalf("RenderCompatibilityCard() error = %v", err)
	}
	if !strings.Contains(svg, ">75<") {
		t.Error("analyst/analyst card should carry the self-pair score 75")
	}
}
