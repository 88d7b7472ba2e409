package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chapterController "quizku_backend/internals/features/quizzes/chapter/controller"
)

// ChapterUserRoutes: daftar chapter per quiz untuk user login.
func ChapterUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := chapterController.NewChapterController(db)

	r.Get("/quizzes/:quiz_id/chapters", ctrl.GetChaptersByQuiz)
}

// ChapterAdminRoutes: CRUD chapter untuk admin.
func ChapterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := chapterController.NewChapterController(db)

	r.Get("/quizzes/:quiz_id/chapters", ctrl.GetChaptersByQuiz)

	chapters := r.Group("/chapters")
	{
		chapters.Post("/", ctrl.CreateChapter)
		chapters.Put("/:id", ctrl.UpdateChapter)
		chapters.Delete("/:id", ctrl.DeleteChapter)
	}
}
