package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
	"quizku_backend/internals/features/users/user/dto"
	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 🟢 PROFILE (user login)
// =============================
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	err = ctrl.DB.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat profil")
	}

	return helper.JsonOK(c, "Profil ditemukan", dto.ToUserDTO(user))
}

// =============================
// 🟢 LAPORAN USER + ATTEMPT (admin)
// =============================
// Satu baris per attempt; user tanpa attempt tetap muncul dengan kolom
// attempt berisi "N/A".
func (ctrl *UserController) GetUsersReport(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("user_created_at ASC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar user")
	}

	var attempts []attemptModel.QuizAttemptModel
	if err := ctrl.DB.Order("quiz_attempt_created_at DESC").Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat attempt")
	}

	quizTitles, err := ctrl.quizTitles()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat quiz")
	}
	chapterTitles, err := ctrl.chapterTitles()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}
	questionCounts, err := ctrl.questionCountsPerChapter()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
	}

	attemptsByUser := map[uuid.UUID][]attemptModel.QuizAttemptModel{}
	for _, a := range attempts {
		attemptsByUser[a.QuizAttemptUserID] = append(attemptsByUser[a.QuizAttemptUserID], a)
	}

	rows := make([]dto.UserAttemptReportRow, 0, len(users))
	for _, u := range users {
		userAttempts := attemptsByUser[u.UserID]
		if len(userAttempts) == 0 {
			rows = append(rows, dto.UserAttemptReportRow{
				Username:       u.UserUsername,
				Fullname:       u.UserFullname,
				QuizTitle:      "N/A",
				ChapterTitle:   "N/A",
				Score:          "N/A",
				TotalQuestions: "N/A",
				AttemptedAt:    "N/A",
			})
			continue
		}
		for _, a := range userAttempts {
			row := dto.UserAttemptReportRow{
				Username:       u.UserUsername,
				Fullname:       u.UserFullname,
				QuizTitle:      titleOrNA(quizTitles[a.QuizAttemptQuizID]),
				ChapterTitle:   "N/A",
				Score:          "N/A",
				TotalQuestions: "N/A",
				AttemptedAt:    a.QuizAttemptCreatedAt.Format("2006-01-02 15:04:05"),
			}
			if a.QuizAttemptScore != nil {
				row.Score = fmt.Sprintf("%d", *a.QuizAttemptScore)
			}
			if a.QuizAttemptChapterID != nil {
				row.ChapterTitle = titleOrNA(chapterTitles[*a.QuizAttemptChapterID])
				row.TotalQuestions = fmt.Sprintf("%d", questionCounts[*a.QuizAttemptChapterID])
			}
			rows = append(rows, row)
		}
	}

	return helper.JsonOK(c, "Laporan user & attempt", rows)
}

func (ctrl *UserController) quizTitles() (map[uuid.UUID]string, error) {
	var quizzes []quizModel.QuizModel
	if err := ctrl.DB.Find(&quizzes).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(quizzes))
	for _, q := range quizzes {
		out[q.QuizID] = q.QuizTitle
	}
	return out, nil
}

func (ctrl *UserController) chapterTitles() (map[uuid.UUID]string, error) {
	var chapters []chapterModel.ChapterModel
	if err := ctrl.DB.Find(&chapters).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(chapters))
	for _, ch := range chapters {
		out[ch.ChapterID] = ch.ChapterTitle
	}
	return out, nil
}

// Hitung jumlah soal per chapter sekali jalan, biar tidak N+1.
func (ctrl *UserController) questionCountsPerChapter() (map[uuid.UUID]int64, error) {
	type row struct {
		ChapterID uuid.UUID `gorm:"column:question_chapter_id"`
		Total     int64     `gorm:"column:total"`
	}
	var grouped []row
	err := ctrl.DB.Model(&questionModel.QuestionModel{}).
		Select("question_chapter_id, COUNT(*) AS total").
		Group("question_chapter_id").
		Scan(&grouped).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(grouped))
	for _, g := range grouped {
		out[g.ChapterID] = g.Total
	}
	return out, nil
}

func titleOrNA(title string) string {
	if title == "" {
		return "N/A"
	}
	return title
}
