package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (tanpa token).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	{
		auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
		auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
		auth.Post("/login-admin", middlewares.LoginRateLimiter(), ctrl.LoginAdmin)
		auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
		auth.Post("/reset-password", ctrl.ResetPassword)
		auth.Post("/logout", ctrl.Logout)
	}
}
