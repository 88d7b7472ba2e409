package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	"quizku_backend/internals/features/quizzes/quiz/dto"
	"quizku_backend/internals/features/quizzes/quiz/model"
	helper "quizku_backend/internals/helpers"
)

var validateQuiz = validator.New()

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

// =============================
// 🟢 CREATE QUIZ (admin)
// =============================
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.QuizTitle = strings.TrimSpace(req.QuizTitle)
	if err := validateQuiz.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"quiz_title": {"Judul quiz wajib diisi (3-100 karakter)"},
		})
	}

	quiz := model.QuizModel{QuizTitle: req.QuizTitle}
	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan quiz")
	}

	return helper.JsonCreated(c, "Quiz berhasil dibuat", dto.ToQuizDTO(quiz))
}

// =============================
// 🟢 LIST QUIZ (+search +paging)
// =============================
func (ctrl *QuizController) GetQuizzes(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	search := strings.TrimSpace(c.Query("search"))

	tx := ctrl.DB.Model(&model.QuizModel{})
	if search != "" {
		tx = tx.Where("LOWER(quiz_title) LIKE LOWER(?)", "%"+search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung quiz")
	}

	var quizzes []model.QuizModel
	if err := tx.Order("quiz_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat quiz")
	}

	out := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, dto.ToQuizDTO(q))
	}
	return helper.JsonList(c, "Daftar quiz", out, helper.BuildPagination(total, p))
}

// =============================
// 🟢 DETAIL QUIZ
// =============================
func (ctrl *QuizController) GetQuizByID(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var quiz model.QuizModel
	err = ctrl.DB.Where("quiz_id = ?", quizID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat quiz")
	}

	return helper.JsonOK(c, "Quiz ditemukan", dto.ToQuizDTO(quiz))
}

// =============================
// 🟡 UPDATE QUIZ (admin)
// =============================
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.QuizTitle = strings.TrimSpace(req.QuizTitle)
	if err := validateQuiz.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"quiz_title": {"Judul quiz wajib diisi (3-100 karakter)"},
		})
	}

	var quiz model.QuizModel
	err = ctrl.DB.Where("quiz_id = ?", quizID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat quiz")
	}

	quiz.QuizTitle = req.QuizTitle
	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui quiz")
	}

	return helper.JsonUpdated(c, "Quiz berhasil diperbarui", dto.ToQuizDTO(quiz))
}

// =============================
// 🔴 DELETE QUIZ (admin, cascade)
// =============================
// Urutan hapus: attempts -> questions -> chapters -> quiz, satu transaksi.
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var quiz model.QuizModel
		if err := tx.Where("quiz_id = ?", quizID).First(&quiz).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
			}
			return err
		}

		if err := tx.Where("quiz_attempt_quiz_id = ?", quizID).
			Delete(&attemptModel.QuizAttemptModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_quiz_id = ?", quizID).
			Delete(&questionModel.QuestionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_quiz_id = ?", quizID).
			Delete(&chapterModel.ChapterModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Quiz beserta isinya berhasil dihapus", fiber.Map{
		"quiz_id": quizID,
	})
}
