package service

import (
	"errors"
	"testing"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
)

func linkedMember(name, arch string) model.TeamMember {
	return model.TeamMember{Name: name, ResultID: "r-" + name, PrimaryArchetype: arch}
}

func TestBuildTeamAnalysisRequiresTwoLinked(t *testing.T) {
	tests := []struct {
		name    string
		members []model.TeamMember
	}{
		{"empty team", nil},
		{"only unlinked members", []model.TeamMember{{Name: "Ani"}, {Name: "Budi"}}},
		{"single linked member", []model.TeamMember{linkedMember("Ani", "driver"), {Name: "Budi"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildTeamAnalysis(tt.members, archetype.LangID); !errors.Is(err, util.ErrPackNotReady) {
				t.Errorf("buildTeamAnalysis() error = %v, want ErrPackNotReady", err)
			}
		})
	}
}

func TestBuildTeamAnalysis(t *testing.T) {
	members := []model.TeamMember{
		linkedMember("Ani", "driver"),
		linkedMember("Budi", "spark"),
		linkedMember("Citra", "anchor"),
		{Name: "Dewi"}, // joined but has not linked a result yet
	}

	analysis, err := buildTeamAnalysis(members, archetype.LangEN)
	if err != nil {
		t.Fatalf("buildTeamAnalysis() error = %v", err)
	}

	if analysis.MembersAnalyzed != 3 {
		t.Errorf("MembersAnalyzed = %d, want 3", analysis.MembersAnalyzed)
	}
	if analysis.MembersUnlinked != 1 {
		t.Errorf("MembersUnlinked = %d, want 1", analysis.MembersUnlinked)
	}
	if len(analysis.Pairings) != 3 {
		t.Fatalf("Pairings = %d, want 3", len(analysis.Pairings))
	}

	// driver/spark 85, driver/anchor 75, spark/anchor 90
	if analysis.AverageScore != 83.33 {
		t.Errorf("AverageScore = %v, want 83.33", analysis.AverageScore)
	}

	if analysis.Strongest == nil || analysis.Strongest.Score != 90 {
		t.Errorf("Strongest = %+v, want spark/anchor with score 90", analysis.Strongest)
	}
	if analysis.Strongest != nil && (analysis.Strongest.MemberA != "Budi" || analysis.Strongest.MemberB != "Citra") {
		t.Errorf("Strongest pair = %s/%s, want Budi/Citra", analysis.Strongest.MemberA, analysis.Strongest.MemberB)
	}

	if analysis.MostChallenging == nil || analysis.MostChallenging.Score != 75 {
		t.Errorf("MostChallenging = %+v, want driver/anchor with score 75", analysis.MostChallenging)
	}

	for arch, want := range map[string]int{"driver": 1, "spark": 1, "anchor": 1} {
		if analysis.Distribution[arch] != want {
			t.Errorf("Distribution[%s] = %d, want %d", arch, analysis.Distribution[arch], want)
		}
	}
}

func TestBuildTeamAnalysisUniformTeam(t *testing.T) {
	members := []model.TeamMember{
		linkedMember("Ani", "analyst"),
		linkedMember("Budi", "analyst"),
		linkedMember("Citra", "analyst"),
	}

	analysis, err := buildTeamAnalysis(members, archetype.LangID)
	if err != nil {
		t.Fatalf("buildTeamAnalysis() error = %v", err)
	}

	if analysis.Distribution["analyst"] != 3 {
		t.Errorf("Distribution[analyst] = %d, want 3", analysis.Distribution["analyst"])
	}
	// every pair is analyst/analyst at 75
	if analysis.AverageScore != 75 {
		t.Errorf("AverageScore = %v, want 75", analysis.AverageScore)
	}
	if analysis.Strongest.Score != analysis.MostChallenging.Score {
		t.Error("uniform team should have identical strongest and most challenging scores")
	}
}
