package service

import (
	"encoding/json"
	"fmt"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/compatibility"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"gorm.io/gorm"
)

// TeamPairing is one scored member pair inside the analysis.
type TeamPairing struct {
	MemberA string `json:"member_a"`
	MemberB string `json:"member_b"`
	Pair    string `json:"pair"`
	Score   int    `json:"score"`
	Energy  string `json:"energy"`
	Title   string `json:"title"`
}

// TeamAnalysis aggregates pairwise compatibility across all members with
// linked results.
type TeamAnalysis struct {
	AverageScore     float64        `json:"average_score"`
	Distribution     map[string]int `json:"archetype_distribution"`
	Pairings         []TeamPairing  `json:"pairings"`
	Strongest        *TeamPairing   `json:"strongest_pair,omitempty"`
	MostChallenging  *TeamPairing   `json:"most_challenging_pair,omitempty"`
	MembersAnalyzed  int            `json:"members_analyzed"`
	MembersUnlinked  int            `json:"members_unlinked"`
}

type TeamService struct {
	PackRepo *repository.PackRepository
	QuizRepo *repository.QuizRepository
	Email    *EmailService
}

func NewTeamService(packRepo *repository.PackRepository, quizRepo *repository.QuizRepository, email *EmailService) *TeamService {
	return &TeamService{
		PackRepo: packRepo,
		QuizRepo: quizRepo,
		Email:    email,
	}
}

func (s *TeamService) Create(owner *model.User, name string, maxMembers int) (*model.TeamPack, error) {
	if maxMembers <= 0 || maxMembers > 50 {
		maxMembers = 10
	}
	pack := &model.TeamPack{
		Name:       name,
		OwnerID:    owner.ID,
		InviteCode: newInviteCode(),
		MaxMembers: maxMembers,
		Members: []model.TeamMember{
			{UserID: owner.ID, Name: owner.Name},
		},
	}
	if err := s.PackRepo.CreateTeamPack(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *TeamService) findPack(packID string) (*model.TeamPack, error) {
	pack, err := s.PackRepo.FindTeamPackByID(packID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackNotFound
		}
		return nil, err
	}
	return pack, nil
}

func memberIndex(pack *model.TeamPack, userID uint) int {
	for i, m := range pack.Members {
		if m.UserID == userID {
			return i
		}
	}
	return -1
}

// Invite mails a join link. Only the owner can invite.
func (s *TeamService) Invite(owner *model.User, packID, email string) error {
	pack, err := s.findPack(packID)
	if err != nil {
		return err
	}
	if pack.OwnerID != owner.ID {
		return util.ErrPermissionDenied
	}
	if len(pack.Members) >= pack.MaxMembers {
		return util.ErrPackFull
	}
	if s.Email != nil {
		go s.Email.SendTeamInvite(email, owner.Name, pack.Name, pack.InviteCode)
	}
	return nil
}

func (s *TeamService) Join(user *model.User, inviteCode string) (*model.TeamPack, error) {
	pack, err := s.PackRepo.FindTeamPackByInvite(inviteCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPackNotFound
		}
		return nil, err
	}
	if memberIndex(pack, user.ID) >= 0 {
		return nil, util.ErrAlreadyMember
	}
	if len(pack.Members) >= pack.MaxMembers {
		return nil, util.ErrPackFull
	}

	pack.Members = append(pack.Members, model.TeamMember{UserID: user.ID, Name: user.Name})
	// A joined member invalidates the cached analysis.
	pack.Analysis = ""
	if err := s.PackRepo.UpdateTeamPack(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *TeamService) LinkResult(userID uint, packID, resultID string) (*model.TeamPack, error) {
	pack, err := s.findPack(packID)
	if err != nil {
		return nil, err
	}
	idx := memberIndex(pack, userID)
	if idx < 0 {
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

	pack.Members[idx].ResultID = resultID
	pack.Members[idx].PrimaryArchetype = result.PrimaryArchetype
	pack.Analysis = ""
	if err := s.PackRepo.UpdateTeamPack(pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *TeamService) Get(userID uint, packID string) (*model.TeamPack, error) {
	pack, err := s.findPack(packID)
	if err != nil {
		return nil, err
	}
	if memberIndex(pack, userID) < 0 {
		return nil, util.ErrPermissionDenied
	}
	return pack, nil
}

func (s *TeamService) MyPacks(userID uint) ([]model.TeamPack, error) {
	return s.PackRepo.FindTeamPacksByUser(userID)
}

// Leave removes a member. The owner cannot leave their own pack.
func (s *TeamService) Leave(userID uint, packID string) error {
	pack, err := s.findPack(packID)
	if err != nil {
		return err
	}
	if pack.OwnerID == userID {
		return util.ErrPermissionDenied
	}
	idx := memberIndex(pack, userID)
	if idx < 0 {
		return util.ErrPermissionDenied
	}

	pack.Members = append(pack.Members[:idx], pack.Members[idx+1:]...)
	pack.Analysis = ""
	return s.PackRepo.UpdateTeamPack(pack)
}

// Analysis scores every pair of linked members and caches the aggregate on
// the pack. At least two linked results are required.
func (s *TeamService) Analysis(userID uint, packID string, lang archetype.Language) (*TeamAnalysis, error) {
	pack, err := s.Get(userID, packID)
	if err != nil {
		return nil, err
	}

	if pack.Analysis != "" {
		var cached TeamAnalysis
		if json.Unmarshal([]byte(pack.Analysis), &cached) == nil {
			return &cached, nil
		}
	}

	analysis, err := buildTeamAnalysis(pack.Members, lang)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(analysis); err == nil {
		pack.Analysis = string(encoded)
		if err := s.PackRepo.UpdateTeamPack(pack); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

func buildTeamAnalysis(members []model.TeamMember, lang archetype.Language) (*TeamAnalysis, error) {
	var linked []model.TeamMember
	unlinked := 0
	for _, m := range members {
		if m.ResultID != "" && m.PrimaryArchetype != "" {
			linked = append(linked, m)
		} else {
			unlinked++
		}
	}
	if len(linked) < 2 {
		return nil, util.ErrPackNotReady
	}

	analysis := &TeamAnalysis{
		Distribution:    make(map[string]int, 4),
		MembersAnalyzed: len(linked),
		MembersUnlinked: unlinked,
	}

	total := 0
	for _, m := range linked {
		analysis.Distribution[m.PrimaryArchetype]++
	}
	for i := 0; i < len(linked); i++ {
		for j := i + 1; j < len(linked); j++ {
			view, err := compatibility.LookupNames(linked[i].PrimaryArchetype, linked[j].PrimaryArchetype, lang)
			if err != nil {
				return nil, err
			}
			pairing := TeamPairing{
				MemberA: linked[i].Name,
				MemberB: linked[j].Name,
				Pair:    fmt.Sprintf("%s_%s", linked[i].PrimaryArchetype, linked[j].PrimaryArchetype),
				Score:   view.Score,
				Energy:  view.Energy,
				Title:   view.Title,
			}
			analysis.Pairings = append(analysis.Pairings, pairing)
			total += view.Score

			if analysis.Strongest == nil || pairing.Score > analysis.Strongest.Score {
				p := pairing
				analysis.Strongest = &p
			}
			if analysis.MostChallenging == nil || pairing.Score < analysis.MostChallenging.Score {
				p := pairing
				analysis.MostChallenging = &p
			}
		}
	}

	analysis.AverageScore = float64(int(float64(total)/float64(len(analysis.Pairings))*100+0.5)) / 100
	return analysis, nil
}
