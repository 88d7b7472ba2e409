package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/payment/model"
)

// PaymentInstructionsDTO: tagihan aktif + link pembayaran Snap.
type PaymentInstructionsDTO struct {
	OrderID     string  `json:"order_id"`
	Amount      int64   `json:"amount"`
	Status      string  `json:"status"`
	SnapToken   *string `json:"snap_token,omitempty"`
	RedirectURL *string `json:"redirect_url,omitempty"`
}

func ToPaymentInstructionsDTO(p model.PaymentModel) PaymentInstructionsDTO {
	return PaymentInstructionsDTO{
		OrderID:     p.PaymentOrderID,
		Amount:      p.PaymentAmount,
		Status:      p.PaymentStatus,
		SnapToken:   p.PaymentSnapToken,
		RedirectURL: p.PaymentRedirectURL,
	}
}

type PaymentDTO struct {
	PaymentID uuid.UUID  `json:"payment_id"`
	OrderID   string     `json:"order_id"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToPaymentDTO(p model.PaymentModel) PaymentDTO {
	return PaymentDTO{
		PaymentID: p.PaymentID,
		OrderID:   p.PaymentOrderID,
		Amount:    p.PaymentAmount,
		Status:    p.PaymentStatus,
		PaidAt:    p.PaymentPaidAt,
		CreatedAt: p.PaymentCreatedAt,
	}
}

// MidtransNotificationRequest: payload webhook notifikasi Midtrans.
// Hanya field yang dipakai verifikasi + transisi status.
type MidtransNotificationRequest struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
