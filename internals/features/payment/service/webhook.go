package service

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"quizku_backend/internals/features/payment/model"
)

// VerifyMidtransSignature memverifikasi signature notifikasi:
// SHA512(order_id + status_code + gross_amount + ServerKey).
func VerifyMidtransSignature(orderID, statusCode, grossAmount, signatureKey, serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(signatureKey))
	if want == "" {
		return false
	}
	raw := orderID + statusCode + grossAmount + serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]) == want
}

// MapTransactionStatus memetakan status transaksi Midtrans ke status
// payment internal. Return kedua: apakah akses quiz user harus dibuka.
func MapTransactionStatus(transactionStatus, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "settlement":
		return model.PaymentStatusPaid, true
	case "capture":
		if fraudStatus == "challenge" {
			return model.PaymentStatusPending, false
		}
		return model.PaymentStatusPaid, true
	case "deny", "cancel":
		return model.PaymentStatusCanceled, false
	case "expire":
		return model.PaymentStatusExpired, false
	default:
		// pending dan status tak dikenal dibiarkan pending
		return model.PaymentStatusPending, false
	}
}
