package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "quizku_backend/internals/features/payment/controller"
)

// PaymentUserRoutes: tagihan & riwayat untuk user login.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	{
		payments.Get("/instructions", ctrl.GetInstructions)
		payments.Get("/me", ctrl.GetMyPayments)
	}
}

// PaymentAdminRoutes: aktivasi manual oleh admin.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/:user_id/mark-done", ctrl.MarkPaymentDone)
}

// PaymentWebhookRoutes: endpoint publik untuk notifikasi Midtrans.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/midtrans/notification", ctrl.MidtransNotification)
}
