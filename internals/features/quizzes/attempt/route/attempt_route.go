package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "quizku_backend/internals/features/quizzes/attempt/controller"
	"quizku_backend/internals/features/quizzes/attempt/service"
	featuresMiddleware "quizku_backend/internals/middlewares/features"
)

// AttemptUserRoutes: pengerjaan quiz untuk user login.
// Take & submit dibatasi user berbayar; riwayat, review, dan
// leaderboard terbuka untuk semua user login.
func AttemptUserRoutes(r fiber.Router, db *gorm.DB, deadlines *service.DeadlineStore) {
	ctrl := attemptController.NewAttemptController(db, deadlines)

	paidOnly := featuresMiddleware.IsPaidUser(db)
	r.Get("/quizzes/:quiz_id/chapters/:chapter_id/take", paidOnly, ctrl.TakeQuiz)
	r.Post("/quizzes/:quiz_id/chapters/:chapter_id/submit", paidOnly, ctrl.SubmitQuiz)

	r.Get("/attempts", ctrl.GetMyAttempts)
	r.Get("/attempts/:attempt_id/answer-key", ctrl.GetAnswerKey)
	r.Get("/quizzes/:quiz_id/chapters/:chapter_id/leaderboard", ctrl.GetLeaderboard)
}
