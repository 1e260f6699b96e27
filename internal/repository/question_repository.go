package repository

import (
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("id = ?", id).First(&question).Error
	return &question, err
}

// FindBySeries returns the active question bank for a series in display order.
func (r *QuestionRepository) FindBySeries(series string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("series = ? AND active = ?", series, true).
		Order("sort_order ASC").
		Find(&questions).Error
	return questions, err
}

// FindAllBySeries includes inactive questions, for the admin listing.
func (r *QuestionRepository) FindAllBySeries(series string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("series = ?", series).
		Order("sort_order ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Question{}).Error
}

func (r *QuestionRepository) CountBySeries(series string) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).Where("series = ?", series).Count(&total).Error
	return total, err
}
