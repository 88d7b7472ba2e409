package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "quizku_backend/internals/features/quizzes/quiz/controller"
)

// QuizUserRoutes: baca-saja untuk user login.
func QuizUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	quizzes := r.Group("/quizzes")
	{
		quizzes.Get("/", ctrl.GetQuizzes)
		quizzes.Get("/:id", ctrl.GetQuizByID)
	}
}

// QuizAdminRoutes: CRUD penuh untuk admin.
func QuizAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizController(db)

	quizzes := r.Group("/quizzes")
	{
		quizzes.Get("/", ctrl.GetQuizzes)
		quizzes.Get("/:id", ctrl.GetQuizByID)
		quizzes.Post("/", ctrl.CreateQuiz)
		quizzes.Put("/:id", ctrl.UpdateQuiz)
		quizzes.Delete("/:id", ctrl.DeleteQuiz)
	}
}
