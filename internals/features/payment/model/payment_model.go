package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
)

// PaymentModel: tagihan akses quiz per user (Midtrans Snap).
type PaymentModel struct {
	PaymentID          uuid.UUID  `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentUserID      uuid.UUID  `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentOrderID     string     `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex;not null" json:"payment_order_id"`
	PaymentAmount      int64      `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentStatus      string     `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentSnapToken   *string    `gorm:"column:payment_snap_token;type:varchar(255)" json:"payment_snap_token,omitempty"`
	PaymentRedirectURL *string    `gorm:"column:payment_redirect_url;type:text" json:"payment_redirect_url,omitempty"`
	PaymentPaidAt      *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentCreatedAt   time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}
