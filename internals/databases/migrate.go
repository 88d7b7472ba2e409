package database

import (
	"log"

	"gorm.io/gorm"

	PaymentModel "quizku_backend/internals/features/payment/model"
	AttemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	ChapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	QuestionModel "quizku_backend/internals/features/quizzes/question/model"
	QuizModel "quizku_backend/internals/features/quizzes/quiz/model"
	UserModel "quizku_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan auto-migration seluruh tabel aplikasi.
func MigrateAll(db *gorm.DB) {
	if err := db.AutoMigrate(
		&UserModel.UserModel{},
		&UserModel.AdminModel{},
		&QuizModel.QuizModel{},
		&ChapterModel.ChapterModel{},
		&QuestionModel.QuestionModel{},
		&AttemptModel.QuizAttemptModel{},
		&PaymentModel.PaymentModel{},
	); err != nil {
		log.Fatalf("[ERROR] Gagal migrasi database: %v", err)
	}
	log.Println("[SUCCESS] Migrasi database selesai")
}
