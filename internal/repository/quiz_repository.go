package repository

import (
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) FindAttemptByID(id string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Where("id = ?", id).First(&attempt).Error
	return &attempt, err
}

// CompleteAttempt stores the answers and flips the attempt to completed, but
// only while it is still in progress. Returns the number of rows changed so
// the caller can detect a duplicate submit.
func (r *QuizRepository) CompleteAttempt(id string, answers []model.AttemptAnswer) (int64, error) {
	now := time.Now()
	res := r.DB.Model(&model.QuizAttempt{}).
		Where("id = ? AND status = ?", id, model.AttemptInProgress).
		Updates(map[string]interface{}{
			"answers":      answers,
			"status":       model.AttemptCompleted,
			"completed_at": &now,
		})
	return res.RowsAffected, res.Error
}

func (r *QuizRepository) CreateResult(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

func (r *QuizRepository) FindResultByID(id string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("id = ?", id).First(&result).Error
	return &result, err
}

func (r *QuizRepository) FindResultByAttemptID(attemptID string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("attempt_id = ?", attemptID).First(&result).Error
	return &result, err
}

func (r *QuizRepository) FindResultsByUser(userID uint) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *QuizRepository) ListResults(page, limit int) ([]model.QuizResult, int64, error) {
	var results []model.QuizResult
	var total int64

	if err := r.DB.Model(&model.QuizResult{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error
	return results, total, err
}

func (r *QuizRepository) MarkResultPaid(resultID string) error {
	return r.DB.Model(&model.QuizResult{}).
		Where("id = ?", resultID).
		Update("is_paid", true).
		Error
}

func (r *QuizRepository) SaveReport(resultID, report string) error {
	return r.DB.Model(&model.QuizResult{}).
		Where("id = ?", resultID).
		Update("ai_report", report).
		Error
}

func (r *QuizRepository) SaveShareCardURL(resultID, url string) error {
	return r.DB.Model(&model.QuizResult{}).
		Where("id = ?", resultID).
		Update("share_card_url", url).
		Error
}

func (r *QuizRepository) CountResults() (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizResult{}).Count(&total).Error
	return total, err
}

func (r *QuizRepository) CountStressFlagged() (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuizResult{}).Where("stress_flag = ?", true).Count(&total).Error
	return total, err
}
