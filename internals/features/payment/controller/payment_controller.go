package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/features/payment/dto"
	"quizku_backend/internals/features/payment/model"
	"quizku_backend/internals/features/payment/service"
	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func quizAccessPrice() int64 {
	if raw := configs.GetEnv("QUIZ_ACCESS_PRICE_IDR", "50000"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	return 50000
}

// =============================
// 🟢 INSTRUKSI PEMBAYARAN (user)
// =============================
// Reuse tagihan pending yang sudah ada; kalau belum ada, buat order
// baru + Snap token. User yang sudah paid tidak ditagih lagi.
func (ctrl *PaymentController) GetInstructions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	err = ctrl.DB.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}
	if user.UserIsPaid {
		return helper.JsonOK(c, "Akses quiz sudah aktif", fiber.Map{
			"is_paid": true,
		})
	}

	var payment model.PaymentModel
	err = ctrl.DB.Where("payment_user_id = ? AND payment_status = ?", userID, model.PaymentStatusPending).
		Order("payment_created_at DESC").
		First(&payment).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat tagihan")
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		payment = model.PaymentModel{
			PaymentUserID:  userID,
			PaymentOrderID: fmt.Sprintf("QUIZ-%s-%d", userID.String()[:8], time.Now().Unix()),
			PaymentAmount:  quizAccessPrice(),
			PaymentStatus:  model.PaymentStatusPending,
		}

		token, redirectURL, err := service.GenerateSnapToken(payment, user.UserFullname)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat transaksi pembayaran")
		}
		payment.PaymentSnapToken = &token
		payment.PaymentRedirectURL = &redirectURL

		if err := ctrl.DB.Create(&payment).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
		}
	}

	return helper.JsonOK(c, "Instruksi pembayaran", dto.ToPaymentInstructionsDTO(payment))
}

// =============================
// 🟢 WEBHOOK MIDTRANS (public)
// =============================
// Verifikasi signature, lalu transisi status payment. Settlement /
// capture membuka akses quiz user.
func (ctrl *PaymentController) MidtransNotification(c *fiber.Ctx) error {
	var notif dto.MidtransNotificationRequest
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}

	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY")
	if !service.VerifyMidtransSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey, serverKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var payment model.PaymentModel
	err := ctrl.DB.Where("payment_order_id = ?", notif.OrderID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Balas 200 supaya Midtrans tidak retry terus untuk order asing.
		return helper.JsonOK(c, "Order tidak dikenal, notifikasi diabaikan", fiber.Map{
			"status": "ignored",
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat tagihan")
	}

	newStatus, grantAccess := service.MapTransactionStatus(notif.TransactionStatus, notif.FraudStatus)

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		payment.PaymentStatus = newStatus
		if grantAccess && payment.PaymentPaidAt == nil {
			now := time.Now()
			payment.PaymentPaidAt = &now
		}
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}
		if grantAccess {
			return tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", payment.PaymentUserID).
				Update("user_is_paid", true).Error
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tagihan")
	}

	return helper.JsonOK(c, "Notifikasi diproses", fiber.Map{
		"order_id":       payment.PaymentOrderID,
		"payment_status": payment.PaymentStatus,
	})
}

// =============================
// 🟡 TANDAI LUNAS MANUAL (admin)
// =============================
// Jalur darurat kalau webhook tidak sampai (transfer manual, dsb).
func (ctrl *PaymentController) MarkPaymentDone(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Update("user_is_paid", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}

		now := time.Now()
		return tx.Model(&model.PaymentModel{}).
			Where("payment_user_id = ? AND payment_status = ?", userID, model.PaymentStatusPending).
			Updates(map[string]any{
				"payment_status":  model.PaymentStatusPaid,
				"payment_paid_at": now,
			}).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Akses quiz user diaktifkan", fiber.Map{
		"user_id": userID,
		"is_paid": true,
	})
}

// =============================
// 🟢 RIWAYAT PEMBAYARAN SAYA (user)
// =============================
func (ctrl *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var payments []model.PaymentModel
	if err := ctrl.DB.Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat riwayat pembayaran")
	}

	out := make([]dto.PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.ToPaymentDTO(p))
	}
	return helper.JsonOK(c, "Riwayat pembayaran", out)
}
