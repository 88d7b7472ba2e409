package controller

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizku_backend/internals/features/payment/model"
	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

const testServerKey = "SB-Mid-server-test"

func newPaymentTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("MIDTRANS_SERVER_KEY", testServerKey)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}, &model.PaymentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewPaymentController(db)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})
	app.Post("/api/payments/midtrans/notification", ctrl.MidtransNotification)
	app.Post("/api/a/payments/:user_id/mark-done", ctrl.MarkPaymentDone)
	return app, db
}

func createUnpaidUserWithBill(t *testing.T, db *gorm.DB) (userModel.UserModel, model.PaymentModel) {
	t.Helper()
	user := userModel.UserModel{
		UserUsername: "calon_peserta",
		UserPassword: "hash",
		UserFullname: "Calon Peserta",
		UserDob:      time.Date(2001, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	payment := model.PaymentModel{
		PaymentUserID:  user.UserID,
		PaymentOrderID: "QUIZ-test-0001",
		PaymentAmount:  50000,
		PaymentStatus:  model.PaymentStatusPending,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}
	return user, payment
}

func notifPayload(orderID, txStatus string) map[string]any {
	statusCode := "200"
	grossAmount := "50000.00"
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return map[string]any{
		"order_id":           orderID,
		"status_code":        statusCode,
		"gross_amount":       grossAmount,
		"signature_key":      hex.EncodeToString(sum[:]),
		"transaction_status": txStatus,
		"fraud_status":       "accept",
	}
}

func postNotif(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp
}

func TestWebhookSettlementGrantsAccess(t *testing.T) {
	app, db := newPaymentTestApp(t, "pay_settlement")
	user, payment := createUnpaidUserWithBill(t, db)

	resp := postNotif(t, app, "/api/payments/midtrans/notification", notifPayload(payment.PaymentOrderID, "settlement"))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updatedPayment model.PaymentModel
	if err := db.First(&updatedPayment, "payment_order_id = ?", payment.PaymentOrderID).Error; err != nil {
		t.Fatal(err)
	}
	if updatedPayment.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("payment_status = %q, want paid", updatedPayment.PaymentStatus)
	}
	if updatedPayment.PaymentPaidAt == nil {
		t.Error("payment_paid_at belum terisi")
	}

	var updatedUser userModel.UserModel
	if err := db.First(&updatedUser, "user_id = ?", user.UserID).Error; err != nil {
		t.Fatal(err)
	}
	if !updatedUser.UserIsPaid {
		t.Error("user_is_paid masih false setelah settlement")
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	app, db := newPaymentTestApp(t, "pay_bad_sig")
	user, payment := createUnpaidUserWithBill(t, db)

	payload := notifPayload(payment.PaymentOrderID, "settlement")
	payload["signature_key"] = "deadbeef"

	resp := postNotif(t, app, "/api/payments/midtrans/notification", payload)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var updatedUser userModel.UserModel
	db.First(&updatedUser, "user_id = ?", user.UserID)
	if updatedUser.UserIsPaid {
		t.Error("signature salah tidak boleh membuka akses")
	}
}

func TestWebhookExpireDoesNotGrantAccess(t *testing.T) {
	app, db := newPaymentTestApp(t, "pay_expire")
	user, payment := createUnpaidUserWithBill(t, db)

	resp := postNotif(t, app, "/api/payments/midtrans/notification", notifPayload(payment.PaymentOrderID, "expire"))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updatedPayment model.PaymentModel
	db.First(&updatedPayment, "payment_order_id = ?", payment.PaymentOrderID)
	if updatedPayment.PaymentStatus != model.PaymentStatusExpired {
		t.Errorf("payment_status = %q, want expired", updatedPayment.PaymentStatus)
	}

	var updatedUser userModel.UserModel
	db.First(&updatedUser, "user_id = ?", user.UserID)
	if updatedUser.UserIsPaid {
		t.Error("transaksi expire tidak boleh membuka akses")
	}
}

func TestWebhookUnknownOrderIgnored(t *testing.T) {
	app, _ := newPaymentTestApp(t, "pay_unknown")

	// order asing dibalas 200 supaya Midtrans berhenti retry
	resp := postNotif(t, app, "/api/payments/midtrans/notification", notifPayload("ORDER-TIDAK-ADA", "settlement"))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMarkPaymentDone(t *testing.T) {
	app, db := newPaymentTestApp(t, "pay_mark_done")
	user, payment := createUnpaidUserWithBill(t, db)

	resp := postNotif(t, app, "/api/a/payments/"+user.UserID.String()+"/mark-done", map[string]any{})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updatedUser userModel.UserModel
	db.First(&updatedUser, "user_id = ?", user.UserID)
	if !updatedUser.UserIsPaid {
		t.Error("user_is_paid masih false setelah mark-done")
	}

	var updatedPayment model.PaymentModel
	db.First(&updatedPayment, "payment_order_id = ?", payment.PaymentOrderID)
	if updatedPayment.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("tagihan pending harus ikut ditandai paid, got %q", updatedPayment.PaymentStatus)
	}
}
