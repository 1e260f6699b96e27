package model

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
	PaymentExpired PaymentStatus = "expired"
)

// Payment is one Midtrans Snap transaction. OrderID is the merchant order id
// sent to Midtrans and echoed back by the webhook.
//
// swagger:model Payment
type Payment struct {
	UUIDBase
	OrderID     string        `gorm:"size:64;uniqueIndex;not null" json:"orderId"`
	UserID      uint          `gorm:"index;not null" json:"userId"`
	ProductID   string        `gorm:"size:50;not null" json:"productId"`
	ResultID    string        `gorm:"size:36;index" json:"resultId"`
	PackID      string        `gorm:"size:36;index" json:"packId"`
	Amount      int64         `gorm:"not null" json:"amount"`
	Currency    string        `gorm:"size:8;default:'IDR'" json:"currency"`
	Status      PaymentStatus `gorm:"type:enum('pending','paid','failed','expired');default:'pending'" json:"status"`
	SnapToken   string        `gorm:"size:255" json:"snapToken"`
	RedirectURL string        `gorm:"size:255" json:"redirectUrl"`
	PaidAt      *time.Time    `json:"paidAt"`
}

func (Payment) TableName() string {
	return "payments"
}
