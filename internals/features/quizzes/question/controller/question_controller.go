package controller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	chapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	"quizku_backend/internals/features/quizzes/question/dto"
	"quizku_backend/internals/features/quizzes/question/model"
	helper "quizku_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =============================
// 🟢 CREATE QUESTION (admin, multipart)
// =============================
// Soal boleh berupa teks, gambar, atau keduanya. Gambar lewat field
// multipart "image", dibatasi allow-list ekstensi.
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	if err := validateQuestion.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"form": {"Opsi 1-4 dan correct_option (1-4) wajib diisi"},
		})
	}

	var chapter chapterModel.ChapterModel
	err := ctrl.DB.Where("chapter_id = ?", req.ChapterID).First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}
	if chapter.ChapterQuizID != req.QuizID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter bukan bagian dari quiz tersebut")
	}

	var imageName *string
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		if !helper.AllowedImageFile(fh.Filename, constants.AllowedImageExtensions) {
			return helper.JsonValidationError(c, map[string][]string{
				"image": {"Ekstensi gambar harus png/jpg/jpeg/gif"},
			})
		}
		saved, err := helper.SaveUploadedImage(c, fh, constants.UploadDir)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		imageName = &saved
	}

	statement := normalizeOptionalText(req.Statement)
	if statement == nil && imageName == nil {
		return helper.JsonValidationError(c, map[string][]string{
			"statement": {"Soal harus punya teks pernyataan atau gambar"},
		})
	}

	question := model.QuestionModel{
		QuestionQuizID:        req.QuizID,
		QuestionChapterID:     req.ChapterID,
		QuestionStatement:     statement,
		QuestionImage:         imageName,
		QuestionOptions:       req.Options(),
		QuestionCorrectOption: req.CorrectOption,
		QuestionExplanation:   normalizeOptionalText(req.Explanation),
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan soal")
	}

	return helper.JsonCreated(c, "Soal berhasil dibuat", dto.ToQuestionAdminDTO(question))
}

// =============================
// 🟢 LIST QUESTION PER CHAPTER (admin)
// =============================
func (ctrl *QuestionController) GetQuestionsByChapter(c *fiber.Ctx) error {
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.Where("question_chapter_id = ?", chapterID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}

	out := make([]dto.QuestionAdminDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.ToQuestionAdminDTO(q))
	}
	return helper.JsonOK(c, "Daftar soal", out)
}

// =============================
// 🟡 UPDATE QUESTION (admin, multipart)
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	var question model.QuestionModel
	err = ctrl.DB.Where("question_id = ?", questionID).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	if err := validateQuestion.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"form": {"Opsi 1-4 dan correct_option (1-4) wajib diisi"},
		})
	}

	// Gambar baru (opsional) menggantikan gambar lama.
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		if !helper.AllowedImageFile(fh.Filename, constants.AllowedImageExtensions) {
			return helper.JsonValidationError(c, map[string][]string{
				"image": {"Ekstensi gambar harus png/jpg/jpeg/gif"},
			})
		}
		saved, err := helper.SaveUploadedImage(c, fh, constants.UploadDir)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		if question.QuestionImage != nil {
			removeUploadedImage(*question.QuestionImage)
		}
		question.QuestionImage = &saved
	}

	statement := normalizeOptionalText(req.Statement)
	if statement == nil && question.QuestionImage == nil {
		return helper.JsonValidationError(c, map[string][]string{
			"statement": {"Soal harus punya teks pernyataan atau gambar"},
		})
	}

	question.QuestionStatement = statement
	question.QuestionOptions = req.Options()
	question.QuestionCorrectOption = req.CorrectOption
	question.QuestionExplanation = normalizeOptionalText(req.Explanation)

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui soal")
	}

	return helper.JsonUpdated(c, "Soal berhasil diperbarui", dto.ToQuestionAdminDTO(question))
}

// =============================
// 🔴 DELETE QUESTION (admin)
// =============================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	questionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID tidak valid")
	}

	var question model.QuestionModel
	err = ctrl.DB.Where("question_id = ?", questionID).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}

	if err := ctrl.DB.Delete(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if question.QuestionImage != nil {
		removeUploadedImage(*question.QuestionImage)
	}

	return helper.JsonDeleted(c, "Soal berhasil dihapus", fiber.Map{
		"question_id": questionID,
	})
}

func normalizeOptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Gagal hapus file lama bukan alasan menggagalkan request.
func removeUploadedImage(filename string) {
	_ = os.Remove(filepath.Join(constants.UploadDir, filename))
}
