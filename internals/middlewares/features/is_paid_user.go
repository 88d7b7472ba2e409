package features

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

// IsPaidUser menggate pengerjaan quiz: hanya user dengan status pembayaran lunas.
func IsPaidUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}

		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User tidak ditemukan")
		}

		if !user.UserIsPaid {
			return fiber.NewError(fiber.StatusForbidden,
				"Akses quiz memerlukan pembayaran. Silakan selesaikan pembayaran terlebih dahulu.")
		}
		return c.Next()
	}
}
