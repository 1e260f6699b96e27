package service

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/compatibility"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newInviteCode returns a short random code for pack join links.
func newInviteCode() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// CouplesComparison is the generated pack comparison, cached as JSON on the
// pack row.
type CouplesComparison struct {
	PrimaryPair   compatibility.View `json:"primary_pair"`
	SecondaryPair compatibility.View `json:"secondary_pair"`
	Narrative     string             `json:"narrative,omitempty"`
}

type CouplesService struct {
	PackRepo *repository.PackRepository
	QuizRepo *repository.QuizRepository
	Email    *EmailService
	AI       *AIService
}

func NewCouplesService(packRepo *repository.PackRepository, quizRepo *repository.QuizRepository, email *EmailService, ai *AIService) *CouplesService {
	return &CouplesService{
		PackRepo: packRepo,
		QuizRepo: quizRepo,
		Email:    email,
		AI:       ai,
	}
}

func (s *CouplesService) Create(creator *model.User, partnerEmail string) (*model.CouplesPack, error) {
	pack := &model.CouplesPack{
		CreatorID:    creator.ID,
		PartnerEmail: partnerEmail,
		InviteCode:   newInviteCode(),
		Status:       model.CouplesPendingPartner,
	}
	if err := s.PackRepo.CreateCouplesPack(pack); err != nil {
		return nil, err
	}

	if partnerEmail != "" && s.Email != nil {
		go s.Email.SendCouplesInvite(partnerEmail, creator.Name, pack.InviteCode)
	}
	return pack, nil
}

func (s *CouplesService) Join(userID uint, inviteCode string) (*model.CouplesPack, error) {
	pack, err := s.PackRepo.FindCouplesPackByInvite(inviteCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackNotFound
		}
		return nil, err
	}
	if pack.CreatorID == userID {
		return nil, util.ErrAlreadyMember
	}
	if pack.PartnerID != nil {
		if *pack.PartnerID == userID {
			return nil, util.ErrAlreadyMember
		}
		return nil, util.ErrPackFull
	}

	pack.PartnerID = &userID
	pack.Status = model.CouplesPendingTests
	if err := s.PackRepo.UpdateCouplesPack(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *CouplesService) isMember(pack *model.CouplesPack, userID uint) bool {
	if pack.CreatorID == userID {
		return true
	}
	return pack.PartnerID != nil && *pack.PartnerID == userID
}

// LinkResult attaches one member's quiz result to their side of the pack.
func (s *CouplesService) LinkResult(userID uint, packID, resultID string) (*model.CouplesPack, error) {
	pack, err := s.PackRepo.FindCouplesPackByID(packID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackNotFound
		}
		return nil, err
	}
	if !s.isMember(pack, userID) {
		return nil, util.ErrPermissionDenied
	}

	result, err := s.QuizRepo.FindResultByID(resultID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	if result.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	if pack.CreatorID == userID {
		pack.CreatorResultID = resultID
	} else {
		pack.PartnerResultID = resultID
	}
	if err := s.PackRepo.UpdateCouplesPack(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *CouplesService) Get(userID uint, packID string) (*model.CouplesPack, error) {
	pack, err := s.PackRepo.FindCouplesPackByID(packID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackNotFound
		}
		return nil, err
	}
	if !s.isMember(pack, userID) {
		return nil, util.ErrPermissionDenied
	}
	return pack, nil
}

func (s *CouplesService) MyPacks(userID uint) ([]model.CouplesPack, error) {
	return s.PackRepo.FindCouplesPacksByUser(userID)
}

// Comparison builds the pack's compatibility comparison: the primary pairing
// carries the verdict, the secondary pairing adds nuance, and an optional AI
// narrative is appended when the endpoint is configured. The output is cached
// so both members read the same text forever.
func (s *CouplesService) Comparison(userID uint, packID string, lang archetype.Language) (*CouplesComparison, error) {
	pack, err := s.Get(userID, packID)
	if err != nil {
		return nil, err
	}
	if pack.CreatorResultID == "" || pack.PartnerResultID == "" {
		return nil, util.ErrPackNotReady
	}

	if pack.Comparison != "" {
		var cached CouplesComparison
		if json.Unmarshal([]byte(pack.Comparison), &cached) == nil {
			return &cached, nil
		}
	}

	creatorResult, err := s.QuizRepo.FindResultByID(pack.CreatorResultID)
	if err != nil {
		return nil, err
	}
	partnerResult, err := s.QuizRepo.FindResultByID(pack.PartnerResultID)
	if err != nil {
		return nil, err
	}

	comparison, err := buildCouplesComparison(creatorResult, partnerResult, lang)
	if err != nil {
		return nil, err
	}

	if s.AI != nil && s.AI.Enabled() {
		narrative, err := s.AI.Chat(couplesPrompt(creatorResult, partnerResult, comparison, lang), "")
		if err != nil {
			logger.Log.Warn("AI couples narrative failed", zap.String("pack_id", packID), zap.Error(err))
		} else {
			comparison.Narrative = narrative
		}
	}

	encoded, err := json.Marshal(comparison)
	if err != nil {
		return nil, err
	}
	pack.Comparison = string(encoded)
	pack.Status = model.CouplesComplete
	if err := s.PackRepo.UpdateCouplesPack(pack); err != nil {
		return nil, err
	}
	return comparison, nil
}

func buildCouplesComparison(a, b *model.QuizResult, lang archetype.Language) (*CouplesComparison, error) {
	primaryPair, err := compatibility.LookupNames(a.PrimaryArchetype, b.PrimaryArchetype, lang)
	if err != nil {
		return nil, err
	}
	secondaryPair, err := compatibility.LookupNames(a.SecondaryArchetype, b.SecondaryArchetype, lang)
	if err != nil {
		return nil, err
	}
	return &CouplesComparison{
		PrimaryPair:   primaryPair,
		SecondaryPair: secondaryPair,
	}, nil
}

func couplesPrompt(a, b *model.QuizResult, c *CouplesComparison, lang archetype.Language) string {
	langName := "Indonesian"
	if lang == archetype.LangEN {
		langName = "English"
	}
	encoded, _ := json.Marshal(c)
	return "Write a short couples compatibility narrative in " + langName + " (250-350 words) for a " +
		a.PrimaryArchetype + " paired with a " + b.PrimaryArchetype + ". " +
		"Base it strictly on this structured comparison, do not invent scores: " + string(encoded)
}
