package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"quizku_backend/internals/features/payment/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken membuat transaksi Snap untuk tagihan akses quiz,
// return (token, redirect URL).
func GenerateSnapToken(p model.PaymentModel, fullname string) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("payment_amount tidak valid")
	}
	if p.PaymentOrderID == "" {
		return "", "", errors.New("payment_order_id wajib diisi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: fullname,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.PaymentOrderID,
				Price:    p.PaymentAmount,
				Qty:      1,
				Name:     "Akses Quiz",
				Category: "QUIZ_ACCESS",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
