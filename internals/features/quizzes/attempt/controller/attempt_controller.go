package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quizzes/attempt/dto"
	"quizku_backend/internals/features/quizzes/attempt/model"
	"quizku_backend/internals/features/quizzes/attempt/service"
	chapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	questionDTO "quizku_backend/internals/features/quizzes/question/dto"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

type AttemptController struct {
	DB        *gorm.DB
	Deadlines *service.DeadlineStore
}

func NewAttemptController(db *gorm.DB, deadlines *service.DeadlineStore) *AttemptController {
	return &AttemptController{DB: db, Deadlines: deadlines}
}

// =============================
// 🟢 TAKE QUIZ (user)
// =============================
// Paket pengerjaan: soal tanpa kunci + deadline countdown.
// Deadline dipasang sekali (60 detik per soal); refresh halaman
// mengembalikan deadline yang sama, bukan yang baru.
func (ctrl *AttemptController) TakeQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var chapter chapterModel.ChapterModel
	err = ctrl.DB.Where("chapter_id = ? AND chapter_quiz_id = ?", chapterID, quizID).
		First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan pada quiz tersebut")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}

	var questions []questionModel.QuestionModel
	if err := ctrl.DB.Where("question_chapter_id = ?", chapterID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter ini belum punya soal")
	}

	duration := time.Duration(len(questions)*constants.SecondsPerQuestion) * time.Second
	deadline, err := ctrl.Deadlines.GetOrSet(c.Context(), userID, quizID, chapterID, duration)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memasang deadline quiz")
	}

	out := make([]questionDTO.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionDTO.ToQuestionDTO(q))
	}

	return helper.JsonOK(c, "Quiz siap dikerjakan", dto.TakeQuizResponse{
		QuizID:    quizID,
		ChapterID: chapterID,
		Deadline:  deadline.Unix(),
		Questions: out,
	})
}

// =============================
// 🟢 SUBMIT QUIZ (user)
// =============================
// Submit selalu diterima, termasuk yang lewat deadline (deadline hanya
// advisory untuk countdown). Attempt baru selalu dibuat; baris lama
// tidak pernah diubah.
func (ctrl *AttemptController) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Answers == nil {
		req.Answers = map[string]*int{}
	}

	var chapter chapterModel.ChapterModel
	err = ctrl.DB.Where("chapter_id = ? AND chapter_quiz_id = ?", chapterID, quizID).
		First(&chapter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter tidak ditemukan pada quiz tersebut")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat chapter")
	}

	var questions []questionModel.QuestionModel
	if err := ctrl.DB.Where("question_chapter_id = ?", chapterID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter ini belum punya soal")
	}

	keys := make([]service.AnswerKeyItem, 0, len(questions))
	for _, q := range questions {
		keys = append(keys, service.AnswerKeyItem{
			QuestionID:    q.QuestionID,
			CorrectOption: q.QuestionCorrectOption,
		})
	}
	summary := service.Grade(keys, req.Answers)

	// Snapshot menyimpan seluruh soal chapter, termasuk yang dilewati
	// (null), supaya review answer key tetap lengkap.
	snapshot := make(map[string]*int, len(questions))
	for _, q := range questions {
		snapshot[q.QuestionID.String()] = req.Answers[q.QuestionID.String()]
	}
	rawAnswers, err := json.Marshal(snapshot)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}

	score := summary.Correct
	attempt := model.QuizAttemptModel{
		QuizAttemptUserID:    userID,
		QuizAttemptQuizID:    quizID,
		QuizAttemptChapterID: &chapterID,
		QuizAttemptScore:     &score,
		QuizAttemptAnswers:   rawAnswers,
	}
	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan attempt")
	}

	// Deadline dihapus supaya attempt berikutnya dapat window baru.
	// Kalau gagal (mis. Redis down) biarkan kedaluwarsa lewat TTL.
	_ = ctrl.Deadlines.Clear(c.Context(), userID, quizID, chapterID)

	return helper.JsonCreated(c, "Jawaban berhasil disubmit", dto.SubmitQuizResponse{
		AttemptID:   attempt.QuizAttemptID,
		Score:       score,
		Total:       summary.Total,
		Correct:     summary.Correct,
		Wrong:       summary.Wrong,
		Unattempted: summary.Unattempted,
		Accuracy:    summary.Accuracy,
		Band:        summary.Band,
	})
}

// =============================
// 🟢 RIWAYAT ATTEMPT SAYA (user)
// =============================
func (ctrl *AttemptController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.Where("quiz_attempt_user_id = ?", userID).
		Order("quiz_attempt_created_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat riwayat")
	}

	quizTitles := map[uuid.UUID]string{}
	chapterTitles := map[uuid.UUID]string{}
	questionCounts := map[uuid.UUID]int64{}

	out := make([]dto.AttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		item := dto.AttemptDTO{
			AttemptID:    a.QuizAttemptID,
			QuizID:       a.QuizAttemptQuizID,
			ChapterID:    a.QuizAttemptChapterID,
			ChapterTitle: "N/A",
			CreatedAt:    a.QuizAttemptCreatedAt,
		}
		if a.QuizAttemptScore != nil {
			item.Score = *a.QuizAttemptScore
		}

		if _, ok := quizTitles[a.QuizAttemptQuizID]; !ok {
			var quiz quizModel.QuizModel
			if err := ctrl.DB.Where("quiz_id = ?", a.QuizAttemptQuizID).First(&quiz).Error; err == nil {
				quizTitles[a.QuizAttemptQuizID] = quiz.QuizTitle
			} else {
				quizTitles[a.QuizAttemptQuizID] = "N/A"
			}
		}
		item.QuizTitle = quizTitles[a.QuizAttemptQuizID]

		if a.QuizAttemptChapterID != nil {
			chID := *a.QuizAttemptChapterID
			if _, ok := chapterTitles[chID]; !ok {
				var chapter chapterModel.ChapterModel
				if err := ctrl.DB.Where("chapter_id = ?", chID).First(&chapter).Error; err == nil {
					chapterTitles[chID] = chapter.ChapterTitle
				} else {
					chapterTitles[chID] = "N/A"
				}
				var count int64
				_ = ctrl.DB.Model(&questionModel.QuestionModel{}).
					Where("question_chapter_id = ?", chID).
					Count(&count).Error
				questionCounts[chID] = count
			}
			item.ChapterTitle = chapterTitles[chID]
			item.TotalQuestions = questionCounts[chID]
		}

		out = append(out, item)
	}

	return helper.JsonOK(c, "Riwayat attempt", out)
}

// =============================
// 🟢 ANSWER KEY REVIEW (user)
// =============================
// Review per soal untuk attempt milik user sendiri. Attempt user lain
// ditolak 403. Snapshot jawaban korup tidak menggagalkan request:
// semua soal dihitung unattempted.
func (ctrl *AttemptController) GetAnswerKey(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	attemptID, err := helper.ParseUUIDParam(c, "attempt_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Attempt ID tidak valid")
	}

	var attempt model.QuizAttemptModel
	err = ctrl.DB.Where("quiz_attempt_id = ?", attemptID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Attempt tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat attempt")
	}
	if attempt.QuizAttemptUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Attempt ini bukan milik Anda")
	}

	tx := ctrl.DB.Where("question_quiz_id = ?", attempt.QuizAttemptQuizID)
	if attempt.QuizAttemptChapterID != nil {
		tx = tx.Where("question_chapter_id = ?", *attempt.QuizAttemptChapterID)
	}
	var questions []questionModel.QuestionModel
	if err := tx.Order("question_created_at ASC").Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat soal")
	}

	answers := service.DecodeAnswers(attempt.QuizAttemptAnswers)

	keys := make([]service.AnswerKeyItem, 0, len(questions))
	for _, q := range questions {
		keys = append(keys, service.AnswerKeyItem{
			QuestionID:    q.QuestionID,
			CorrectOption: q.QuestionCorrectOption,
		})
	}
	summary := service.Grade(keys, answers)

	items := make([]dto.AnswerKeyItemDTO, 0, len(questions))
	for _, q := range questions {
		selected := answers[q.QuestionID.String()]
		items = append(items, dto.AnswerKeyItemDTO{
			QuestionID:     q.QuestionID,
			Statement:      q.QuestionStatement,
			Image:          q.QuestionImage,
			Options:        q.QuestionOptions,
			CorrectOption:  q.QuestionCorrectOption,
			SelectedOption: selected,
			IsCorrect:      selected != nil && *selected == q.QuestionCorrectOption,
			Explanation:    q.QuestionExplanation,
		})
	}

	score := 0
	if attempt.QuizAttemptScore != nil {
		score = *attempt.QuizAttemptScore
	}

	return helper.JsonOK(c, "Answer key attempt", dto.AnswerKeyResponse{
		AttemptID:   attempt.QuizAttemptID,
		Score:       score,
		Total:       summary.Total,
		Correct:     summary.Correct,
		Wrong:       summary.Wrong,
		Unattempted: summary.Unattempted,
		Accuracy:    summary.Accuracy,
		Band:        summary.Band,
		Items:       items,
	})
}

// =============================
// 🟢 LEADERBOARD (user)
// =============================
// Top 10 attempt untuk satu quiz+chapter: skor tertinggi dulu, seri
// dimenangkan attempt yang lebih dulu. Hasil kosong bukan error.
func (ctrl *AttemptController) GetLeaderboard(c *fiber.Ctx) error {
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter ID tidak valid")
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_chapter_id = ?", quizID, chapterID).
		Order("quiz_attempt_score DESC, quiz_attempt_created_at ASC").
		Limit(constants.LeaderboardLimit).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat leaderboard")
	}

	userNames := map[uuid.UUID]userModel.UserModel{}
	out := make([]dto.LeaderboardEntryDTO, 0, len(attempts))
	for i, a := range attempts {
		if _, ok := userNames[a.QuizAttemptUserID]; !ok {
			var u userModel.UserModel
			if err := ctrl.DB.Where("user_id = ?", a.QuizAttemptUserID).First(&u).Error; err != nil {
				u = userModel.UserModel{UserUsername: "N/A", UserFullname: "N/A"}
			}
			userNames[a.QuizAttemptUserID] = u
		}
		u := userNames[a.QuizAttemptUserID]

		score := 0
		if a.QuizAttemptScore != nil {
			score = *a.QuizAttemptScore
		}
		out = append(out, dto.LeaderboardEntryDTO{
			Rank:      i + 1,
			Username:  u.UserUsername,
			Fullname:  u.UserFullname,
			Score:     score,
			CreatedAt: a.QuizAttemptCreatedAt,
		})
	}

	return helper.JsonOK(c, "Leaderboard top 10", out)
}
