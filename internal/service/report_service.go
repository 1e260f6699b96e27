package service

import (
	"fmt"
	"strings"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportService produces the premium narrative for a paid result. Reports
// are generated once and cached on the result row; regeneration only happens
// if the cache is empty.
type ReportService struct {
	QuizRepo *repository.QuizRepository
	AI       *AIService
}

func NewReportService(quizRepo *repository.QuizRepository, ai *AIService) *ReportService {
	return &ReportService{
		QuizRepo: quizRepo,
		AI:       ai,
	}
}

func (s *ReportService) Generate(userID uint, resultID string) (string, error) {
	result, err := s.QuizRepo.FindResultByID(resultID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", util.ErrResultNotFound
		}
		return "", err
	}
	if result.UserID != userID {
		return "", util.ErrPermissionDenied
	}
	if !result.IsPaid {
		return "", util.ErrResultNotPaid
	}

	if result.AIReport != "" {
		return result.AIReport, nil
	}

	report := s.compose(result)

	if err := s.QuizRepo.SaveReport(resultID, report); err != nil {
		logger.Log.Error("failed to cache report", zap.String("result_id", resultID), zap.Error(err))
	}
	return report, nil
}

// compose prefers the AI narrative and falls back to the archetype profile
// template when the AI endpoint is unreachable or unconfigured.
func (s *ReportService) compose(result *model.QuizResult) string {
	if s.AI != nil && s.AI.Enabled() {
		narrative, err := s.AI.Chat(s.prompt(result), "")
		if err == nil && narrative != "" {
			return narrative
		}
		if err != nil {
			logger.Log.Warn("AI report generation failed, using template",
				zap.String("result_id", result.ID), zap.Error(err))
		}
	}
	return s.template(result)
}

func (s *ReportService) prompt(result *model.QuizResult) string {
	lang := archetype.ParseLanguage(result.Language)
	langName := "Indonesian"
	if lang == archetype.LangEN {
		langName = "English"
	}

	var scores []string
	for _, a := range archetype.All() {
		scores = append(scores, fmt.Sprintf("%s=%d", a, result.Scores[string(a)]))
	}

	stressNote := "not elevated"
	if result.StressFlag {
		stressNote = "elevated (the person leaned on controlling answers under pressure items)"
	}

	return fmt.Sprintf(
		"Write a premium relationship intelligence report in %s for a person who took the %q series quiz.\n"+
			"Primary archetype: %s. Secondary archetype: %s.\n"+
			"Raw counts: %s. Balance index: %.2f (0 means evenly spread, 1 means fully dominated by one archetype).\n"+
			"Stress signal: %s.\n"+
			"Structure the report with these sections: core profile, how this shows up in %s relationships, "+
			"strengths to lean on, blind spots to watch, what happens under stress, and five concrete communication practices. "+
			"Warm, direct, no clinical language, 600-800 words.",
		langName, result.Series, result.PrimaryArchetype, result.SecondaryArchetype,
		strings.Join(scores, ", "), result.BalanceIndex, stressNote, result.Series)
}

// template renders the deterministic fallback from the embedded archetype
// profiles.
func (s *ReportService) template(result *model.QuizResult) string {
	lang := archetype.ParseLanguage(result.Language)

	primary, _ := archetype.Parse(result.PrimaryArchetype)
	secondary, _ := archetype.Parse(result.SecondaryArchetype)
	p := primary.ProfileFor(lang)
	sec := secondary.ProfileFor(lang)

	var b strings.Builder
	if lang == archetype.LangEN {
		fmt.Fprintf(&b, "# Your Relationship Profile: %s\n\n%s\n\n", p.Name, p.Summary)
		fmt.Fprintf(&b, "## Strengths\n")
		for _, s := range p.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Blind Spots\n")
		for _, s := range p.Blindspots {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Under Stress\n")
		for _, s := range p.UnderStress {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Communication Practices\n")
		for _, s := range p.CommunicationTips {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Your Secondary Side: %s\n\n%s\n", sec.Name, sec.Summary)
	} else {
		fmt.Fprintf(&b, "# Profil Relasimu: %s\n\n%s\n\n", p.Name, p.Summary)
		fmt.Fprintf(&b, "## Kekuatan\n")
		for _, s := range p.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Titik Buta\n")
		for _, s := range p.Blindspots {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Saat Tertekan\n")
		for _, s := range p.UnderStress {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Latihan Komunikasi\n")
		for _, s := range p.CommunicationTips {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		fmt.Fprintf(&b, "\n## Sisi Keduamu: %s\n\n%s\n", sec.Name, sec.Summary)
	}
	return b.String()
}
