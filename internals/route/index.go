package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	paymentRoute "quizku_backend/internals/features/payment/route"
	attemptRoute "quizku_backend/internals/features/quizzes/attempt/route"
	attemptService "quizku_backend/internals/features/quizzes/attempt/service"
	chapterRoute "quizku_backend/internals/features/quizzes/chapter/route"
	questionRoute "quizku_backend/internals/features/quizzes/question/route"
	quizRoute "quizku_backend/internals/features/quizzes/quiz/route"
	authRoute "quizku_backend/internals/features/users/auth/route"
	userRoute "quizku_backend/internals/features/users/user/route"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	deadlines := attemptService.NewDeadlineStore(rdb)

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	authRoute.AuthRoutes(api, db)
	paymentRoute.PaymentWebhookRoutes(api, db)

	// ===================== USER (login) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.UserAuth())
	userRoute.UserRoutes(user, db)
	quizRoute.QuizUserRoutes(user, db)
	chapterRoute.ChapterUserRoutes(user, db)
	attemptRoute.AttemptUserRoutes(user, db, deadlines)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AdminAuth())
	userRoute.UserAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
	chapterRoute.ChapterAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
}
