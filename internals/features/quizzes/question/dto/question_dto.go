package dto

import (
	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/question/model"
)

// CreateQuestionRequest: dikirim sebagai multipart form (gambar opsional
// di field "image"). Minimal salah satu statement / image harus ada,
// divalidasi di controller.
type CreateQuestionRequest struct {
	QuizID        uuid.UUID `form:"quiz_id" validate:"required"`
	ChapterID     uuid.UUID `form:"chapter_id" validate:"required"`
	Statement     *string   `form:"statement"`
	Option1       string    `form:"option1" validate:"required"`
	Option2       string    `form:"option2" validate:"required"`
	Option3       string    `form:"option3" validate:"required"`
	Option4       string    `form:"option4" validate:"required"`
	CorrectOption int       `form:"correct_option" validate:"required,min=1,max=4"`
	Explanation   *string   `form:"explanation"`
}

func (r CreateQuestionRequest) Options() []string {
	return []string{r.Option1, r.Option2, r.Option3, r.Option4}
}

type UpdateQuestionRequest struct {
	Statement     *string `form:"statement"`
	Option1       string  `form:"option1" validate:"required"`
	Option2       string  `form:"option2" validate:"required"`
	Option3       string  `form:"option3" validate:"required"`
	Option4       string  `form:"option4" validate:"required"`
	CorrectOption int     `form:"correct_option" validate:"required,min=1,max=4"`
	Explanation   *string `form:"explanation"`
}

func (r UpdateQuestionRequest) Options() []string {
	return []string{r.Option1, r.Option2, r.Option3, r.Option4}
}

// QuestionDTO: tampilan soal untuk pengerjaan quiz. Kunci jawaban dan
// pembahasan sengaja tidak disertakan.
type QuestionDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Statement  *string   `json:"statement,omitempty"`
	Image      *string   `json:"image,omitempty"`
	Options    []string  `json:"options"`
}

func ToQuestionDTO(q model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID: q.QuestionID,
		Statement:  q.QuestionStatement,
		Image:      q.QuestionImage,
		Options:    q.QuestionOptions,
	}
}

// QuestionAdminDTO: tampilan lengkap untuk admin, termasuk kunci.
type QuestionAdminDTO struct {
	QuestionID    uuid.UUID `json:"question_id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	ChapterID     uuid.UUID `json:"chapter_id"`
	Statement     *string   `json:"statement,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	Explanation   *string   `json:"explanation,omitempty"`
}

func ToQuestionAdminDTO(q model.QuestionModel) QuestionAdminDTO {
	return QuestionAdminDTO{
		QuestionID:    q.QuestionID,
		QuizID:        q.QuestionQuizID,
		ChapterID:     q.QuestionChapterID,
		Statement:     q.QuestionStatement,
		Image:         q.QuestionImage,
		Options:       q.QuestionOptions,
		CorrectOption: q.QuestionCorrectOption,
		Explanation:   q.QuestionExplanation,
	}
}
