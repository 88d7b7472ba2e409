package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "quizku_backend/internals/features/users/user/controller"
)

// UserRoutes: profil user login.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/profile", ctrl.GetProfile)
}

// UserAdminRoutes: laporan user untuk admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	r.Get("/users/report", ctrl.GetUsersReport)
}
