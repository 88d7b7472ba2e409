package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "quizku_backend/internals/features/quizzes/question/controller"
)

// QuestionAdminRoutes: CRUD soal untuk admin. Soal lengkap (termasuk
// kunci) hanya lewat grup admin; user melihat soal lewat endpoint take.
func QuestionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)

	r.Get("/chapters/:chapter_id/questions", ctrl.GetQuestionsByChapter)

	questions := r.Group("/questions")
	{
		questions.Post("/", ctrl.CreateQuestion)
		questions.Put("/:id", ctrl.UpdateQuestion)
		questions.Delete("/:id", ctrl.DeleteQuestion)
	}
}
