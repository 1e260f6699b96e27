package repository

import (
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(payment *model.Payment) error {
	return r.DB.Create(payment).Error
}

func (r *PaymentRepository) FindByOrderID(orderID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.DB.Where("order_id = ?", orderID).First(&payment).Error
	return &payment, err
}

func (r *PaymentRepository) FindByUser(userID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// MarkPaid transitions a pending payment to paid. Settlement webhooks can be
// delivered more than once; the status guard keeps the transition idempotent.
func (r *PaymentRepository) MarkPaid(orderID string) (int64, error) {
	now := time.Now()
	res := r.DB.Model(&model.Payment{}).
		Where("order_id = ? AND status = ?", orderID, model.PaymentPending).
		Updates(map[string]interface{}{
			"status":  model.PaymentPaid,
			"paid_at": &now,
		})
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) UpdateStatus(orderID string, status model.PaymentStatus) error {
	return r.DB.Model(&model.Payment{}).
		Where("order_id = ?", orderID).
		Update("status", status).
		Error
}

func (r *PaymentRepository) CountPaid() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Payment{}).Where("status = ?", model.PaymentPaid).Count(&total).Error
	return total, err
}

func (r *PaymentRepository) SumPaidAmount() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Payment{}).
		Where("status = ?", model.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
