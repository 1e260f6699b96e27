package repository

import (
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"gorm.io/gorm"
)

type PackRepository struct {
	DB *gorm.DB
}

func NewPackRepository(db *gorm.DB) *PackRepository {
	return &PackRepository{DB: db}
}

func (r *PackRepository) CreateCouplesPack(pack *model.CouplesPack) error {
	return r.DB.Create(pack).Error
}

func (r *PackRepository) FindCouplesPackByID(id string) (*model.CouplesPack, error) {
	var pack model.CouplesPack
	err := r.DB.Where("id = ?", id).First(&pack).Error
	return &pack, err
}

func (r *PackRepository) FindCouplesPackByInvite(code string) (*model.CouplesPack, error) {
	var pack model.CouplesPack
	err := r.DB.Where("invite_code = ?", code).First(&pack).Error
	return &pack, err
}

func (r *PackRepository) FindCouplesPacksByUser(userID uint) ([]model.CouplesPack, error) {
	var packs []model.CouplesPack
	err := r.DB.Where("creator_id = ? OR partner_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&packs).Error
	return packs, err
}

func (r *PackRepository) UpdateCouplesPack(pack *model.CouplesPack) error {
	return r.DB.Save(pack).Error
}

func (r *PackRepository) CreateTeamPack(pack *model.TeamPack) error {
	return r.DB.Create(pack).Error
}

func (r *PackRepository) FindTeamPackByID(id string) (*model.TeamPack, error) {
	var pack model.TeamPack
	err := r.DB.Where("id = ?", id).First(&pack).Error
	return &pack, err
}

func (r *PackRepository) FindTeamPackByInvite(code string) (*model.TeamPack, error) {
	var pack model.TeamPack
	err := r.DB.Where("invite_code = ?", code).First(&pack).Error
	return &pack, err
}

// FindTeamPacksByUser matches on the members JSON; member counts are small so
// filtering in SQL by owner and post-filtering members in Go keeps the query
// portable.
func (r *PackRepository) FindTeamPacksByUser(userID uint) ([]model.TeamPack, error) {
	var packs []model.TeamPack
	if err := r.DB.Order("created_at DESC").Find(&packs).Error; err != nil {
		return nil, err
	}
	out := packs[:0]
	for _, p := range packs {
		if p.OwnerID == userID {
			out = append(out, p)
			continue
		}
		for _, m := range p.Members {
			if m.UserID == userID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *PackRepository) UpdateTeamPack(pack *model.TeamPack) error {
	return r.DB.Save(pack).Error
}
