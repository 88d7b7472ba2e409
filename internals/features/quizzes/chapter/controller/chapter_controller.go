package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	"quizku_backend/internals/features/quizzes/chapter/dto"
	"quizku_backend/internals/features/quizzes/chapter/model"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
	helper "quizku_backend/internals/helpers"
)

var validateChapter = validator.New()

type ChapterController struct {
	DB *gorm.DB
}

func NewChapterController(db *gorm.DB) *ChapterController {
	return &ChapterController{DB: db}
}

// =============================
// 🟢 CREATE CHAPTER (admin)
// =============================
func (ctrl *ChapterController) CreateChapter(c *fiber.Ctx) error {
	var req dto.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ChapterTitle = strings.TrimSpace(req.ChapterTitle)
	if err := validateChapter.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"chapter_title": {"Judul chapter wajib diisi (3-50 karakter)"},
		})
	}

	var count int64
	if err := ctrl.DB.Model(&quizModel.QuizModel{}).
		Where("quiz_id = ?", req.ChapterQuizID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa quiz")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}

	chapter := model.ChapterModel{
		ChapterTitle:  req.ChapterTitle,
		ChapterQuizID: req.ChapterQuizID,
	}
	if err := ctrl.DB.Create(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan chapter")
	}

	return helper.JsonCreated(c, "Chapter berhasil dibuat", dto.ToChapterDTO(chapter, 0))
}

// =============================
// 🟢 LIST CHAPTER PER QUIZ
// =============================
func (ctrl *ChapterController) GetChaptersByQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var quizCount int64
	if err := ctrl.DB.Model(&quizModel.QuizModel{}).
		Where("quiz_id = ?", quizID).
		Count(&quizCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa quiz")
	}
	if quizCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}

	search := strings.TrimSpace(c.Query("search"))
	tx := ctrl.DB.Where("chapter_quiz_id = ?", quizID)
	if search != "" {
		tx = tx.Where("LOWER(chapter_title) LIKE LOWER(?)", "%"+search+"%")
	}

	var chapters []model.ChapterModel
	if err := tx.Order("chapter_created_at ASC").Find(&chapters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}

	out := make([]dto.ChapterDTO, 0, len(chapters))
	for _, ch := range chapters {
		var questionCount int64
		if err := ctrl.DB.Model(&questionModel.QuestionModel{}).
			Where("question_chapter_id = ?", ch.ChapterID).
			Count(&questionCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
		}
		out = append(out, dto.ToChapterDTO(ch, questionCount))
	}

	return helper.JsonOK(c, "Daftar chapter", out)
}

// =============================
// 🟡 UPDATE CHAPTER (admin)
// =============================
func (ctrl *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	chapterID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var req dto.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.ChapterTitle = strings.TrimSpace(req.ChapterTitle)
	if err := validateChapter.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"chapter_title": {"Judul chapter wajib diisi (3-50 karakter)"},
		})
	}

	var chapter model.ChapterModel
	err = ctrl.DB.Where("chapter_id = ?", chapterID).First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}

	chapter.ChapterTitle = req.ChapterTitle
	if err := ctrl.DB.Save(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui chapter")
	}

	return helper.JsonUpdated(c, "Chapter berhasil diperbarui", dto.ToChapterDTO(chapter, 0))
}

// =============================
// 🔴 DELETE CHAPTER (admin, cascade)
// =============================
// Hapus attempts chapter ini, lalu soal-soalnya, lalu chapternya.
func (ctrl *ChapterController) DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var chapter model.ChapterModel
		if err := tx.Where("chapter_id = ?", chapterID).First(&chapter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Chapter tidak ditemukan")
			}
			return err
		}

		if err := tx.Where("quiz_attempt_chapter_id = ?", chapterID).
			Delete(&attemptModel.QuizAttemptModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_chapter_id = ?", chapterID).
			Delete(&questionModel.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chapter).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Chapter beserta soalnya berhasil dihapus", fiber.Map{
		"chapter_id": chapterID,
	})
}
