package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/compatibility"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShareData is the social-sharing payload for one result.
type ShareData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	ShareURL    string   `json:"share_url"`
	Hashtags    []string `json:"hashtags"`
}

type ShareService struct {
	QuizRepo *repository.QuizRepository
	Storage  *StorageService
}

func NewShareService(quizRepo *repository.QuizRepository, storage *StorageService) *ShareService {
	return &ShareService{
		QuizRepo: quizRepo,
		Storage:  storage,
	}
}

func (s *ShareService) findResult(resultID string) (*model.QuizResult, error) {
	result, err := s.QuizRepo.FindResultByID(resultID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

// ResultCard renders the 600x315 social card for a result. Cards are public
// on purpose: the result id is unguessable and sharing is the whole point.
func (s *ShareService) ResultCard(resultID string, lang archetype.Language) (string, error) {
	result, err := s.findResult(resultID)
	if err != nil {
		return "", err
	}

	primary, _ := archetype.Parse(result.PrimaryArchetype)
	secondary, _ := archetype.Parse(result.SecondaryArchetype)
	return RenderResultCard(primary, secondary, lang), nil
}

// PublishResultCard uploads the card once and remembers the stored URL on
// the result row.
func (s *ShareService) PublishResultCard(ctx context.Context, resultID string, lang archetype.Language) (string, error) {
	result, err := s.findResult(resultID)
	if err != nil {
		return "", err
	}
	if result.ShareCardURL != "" {
		return result.ShareCardURL, nil
	}

	primary, _ := archetype.Parse(result.PrimaryArchetype)
	secondary, _ := archetype.Parse(result.SecondaryArchetype)
	svg := RenderResultCard(primary, secondary, lang)

	filename := fmt.Sprintf("cards/result_%s_%s.svg", result.ID, lang)
	url, err := s.Storage.Upload(ctx, filename, strings.NewReader(svg), int64(len(svg)), "image/svg+xml")
	if err != nil {
		return "", err
	}

	if err := s.QuizRepo.SaveShareCardURL(result.ID, url); err != nil {
		logger.Log.Warn("failed to persist share card url",
			zap.String("result_id", result.ID), zap.Error(err))
	}
	return url, nil
}

// Data assembles the share metadata for a result.
func (s *ShareService) Data(resultID string, lang archetype.Language) (*ShareData, error) {
	result, err := s.findResult(resultID)
	if err != nil {
		return nil, err
	}

	primary, _ := archetype.Parse(result.PrimaryArchetype)
	name := primary.LocalName(lang)

	data := &ShareData{
		ImageURL: fmt.Sprintf("/api/share/card/%s?language=%s", result.ID, lang),
		ShareURL: fmt.Sprintf("/result/%s", result.ID),
	}
	if lang == archetype.LangEN {
		data.Title = fmt.Sprintf("I am a %s! 🎯", name)
		data.Description = "Discover your communication style with 4Color Relating - relationship communication assessment platform"
		data.Hashtags = []string{"4ColorRelating", "CommunicationStyle", "PersonalityTest"}
	} else {
		data.Title = fmt.Sprintf("Saya adalah %s! 🎯", name)
		data.Description = "Temukan gaya komunikasi Anda dengan Relasi4Warna - platform asesmen komunikasi hubungan"
		data.Hashtags = []string{"Relasi4Warna", "KomunikasiHubungan", "TestKepribadian"}
	}
	return data, nil
}

// RenderResultCard is the pure SVG renderer for a primary/secondary pair.
func RenderResultCard(primary, secondary archetype.Archetype, lang archetype.Language) string {
	primaryColor := primary.Color()
	primaryName := primary.LocalName(lang)
	secondaryName := secondary.LocalName(lang)

	title := "Tipe Komunikasi Saya"
	secondaryLabel := "dengan kecenderungan"
	cta := "Temukan tipe Anda di relasi4warna.com"
	if lang == archetype.LangEN {
		title = "My Communication Type"
		secondaryLabel = "with tendency"
		cta = "Find your type at 4colorrelating.com"
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 315" width="600" height="315">
	<defs>
		<linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
			<stop offset="0%%" style="stop-color:#FDFCF8"/>
			<stop offset="100%%" style="stop-color:#F2EFE9"/>
		</linearGradient>
	</defs>
	<rect width="600" height="315" fill="url(#bg)"/>
	<rect x="0" y="0" width="600" height="8" fill="%s"/>
	<circle cx="80" cy="157" r="50" fill="%s" opacity="0.15"/>
	<circle cx="80" cy="157" r="30" fill="%s"/>
	<text x="300" y="60" text-anchor="middle" font-family="serif" font-size="18" fill="#7A6E62">%s</text>
	<text x="300" y="140" text-anchor="middle" font-family="serif" font-weight="bold" font-size="48" fill="%s">%s</text>
	<text x="300" y="180" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#7A6E62">%s %s</text>
	<rect x="150" y="220" width="300" height="1" fill="#E6E2D8"/>
	<text x="300" y="260" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#7A6E62">%s</text>
	<rect x="20" y="287" width="60" height="18" rx="4" fill="#4A3B32"/>
	<text x="50" y="300" text-anchor="middle" font-family="serif" font-weight="bold" font-size="12" fill="#FDFCF8">R4</text>
</svg>`,
		primaryColor, primaryColor, primaryColor,
		title, primaryColor, primaryName, secondaryLabel, secondaryName, cta)
}

// scoreColor buckets a compatibility score into the palette used on cards.
func scoreColor(score int) string {
	switch {
	case score >= 85:
		return "#5D8A66"
	case score >= 75:
		return "#D99E30"
	case score >= 65:
		return "#C05640"
	default:
		return "#5B8FA8"
	}
}

// RenderCompatibilityCard renders the social card for a pair.
func RenderCompatibilityCard(a, b archetype.Archetype, lang archetype.Language) (string, error) {
	view, err := compatibility.Lookup(a, b, lang)
	if err != nil {
		return "", err
	}

	aColor, bColor := a.Color(), b.Color()
	aName, bName := a.LocalName(lang), b.LocalName(lang)

	headerText := "Kompatibilitas Komunikasi"
	cta := "Cek kompatibilitasmu di relasi4warna.com"
	if lang == archetype.LangEN {
		headerText = "Communication Compatibility"
		cta = "Check your compatibility at 4colorrelating.com"
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 315" width="600" height="315">
	<defs>
		<linearGradient id="bgGrad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
			<stop offset="0%%" style="stop-color:#FDFCF8"/>
			<stop offset="100%%" style="stop-color:#F2EFE9"/>
		</linearGradient>
		<linearGradient id="topBar" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
			<stop offset="0%%" style="stop-color:%s"/>
			<stop offset="100%%" style="stop-color:%s"/>
		</linearGradient>
	</defs>
	<rect width="600" height="315" fill="url(#bgGrad)"/>
	<rect x="0" y="0" width="600" height="8" fill="url(#topBar)"/>
	<circle cx="180" cy="130" r="40" fill="%s" opacity="0.15"/>
	<circle cx="180" cy="130" r="25" fill="%s"/>
	<circle cx="420" cy="130" r="40" fill="%s" opacity="0.15"/>
	<circle cx="420" cy="130" r="25" fill="%s"/>
	<text x="300" y="140" text-anchor="middle" font-size="28" fill="#E6E2D8">♥</text>
	<text x="300" y="45" text-anchor="middle" font-family="serif" font-size="16" fill="#7A6E62">%s</text>
	<text x="180" y="190" text-anchor="middle" font-family="serif" font-weight="bold" font-size="18" fill="%s">%s</text>
	<text x="420" y="190" text-anchor="middle" font-family="serif" font-weight="bold" font-size="18" fill="%s">%s</text>
	<rect x="255" y="200" width="90" height="45" rx="10" fill="%s" opacity="0.15"/>
	<text x="300" y="232" text-anchor="middle" font-family="sans-serif" font-weight="bold" font-size="28" fill="%s">%d</text>
	<text x="300" y="265" text-anchor="middle" font-family="serif" font-size="14" fill="#4A3B32">"%s"</text>
	<rect x="150" y="278" width="300" height="1" fill="#E6E2D8"/>
	<text x="300" y="300" text-anchor="middle" font-family="sans-serif" font-size="11" fill="#7A6E62">%s</text>
	<rect x="20" y="287" width="50" height="16" rx="4" fill="#4A3B32"/>
	<text x="45" y="299" text-anchor="middle" font-family="serif" font-weight="bold" font-size="10" fill="#FDFCF8">R4</text>
</svg>`,
		aColor, bColor,
		aColor, aColor, bColor, bColor,
		headerText,
		aColor, aName, bColor, bName,
		scoreColor(view.Score), scoreColor(view.Score), view.Score,
		view.Title, cta), nil
}
