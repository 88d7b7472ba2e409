package dto

import (
	"time"

	"github.com/google/uuid"

	questionDTO "quizku_backend/internals/features/quizzes/question/dto"
)

// SubmitQuizRequest: jawaban per soal (question_id -> opsi 1..4).
// Soal yang dilewati dikirim sebagai null / tidak dikirim sama sekali,
// keduanya dihitung unattempted.
type SubmitQuizRequest struct {
	Answers map[string]*int `json:"answers" validate:"required"`
}

// TakeQuizResponse: paket pengerjaan quiz untuk satu chapter.
// Deadline berupa unix timestamp; refresh halaman tidak meresetnya.
type TakeQuizResponse struct {
	QuizID    uuid.UUID                 `json:"quiz_id"`
	ChapterID uuid.UUID                 `json:"chapter_id"`
	Deadline  int64                     `json:"deadline"`
	Questions []questionDTO.QuestionDTO `json:"questions"`
}

type SubmitQuizResponse struct {
	AttemptID   uuid.UUID `json:"attempt_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	Unattempted int       `json:"unattempted"`
	Accuracy    float64   `json:"accuracy"`
	Band        string    `json:"band"`
}

type AttemptDTO struct {
	AttemptID      uuid.UUID  `json:"attempt_id"`
	QuizID         uuid.UUID  `json:"quiz_id"`
	QuizTitle      string     `json:"quiz_title"`
	ChapterID      *uuid.UUID `json:"chapter_id,omitempty"`
	ChapterTitle   string     `json:"chapter_title"`
	Score          int        `json:"score"`
	TotalQuestions int64      `json:"total_questions"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AnswerKeyItemDTO: review satu soal setelah submit.
type AnswerKeyItemDTO struct {
	QuestionID     uuid.UUID `json:"question_id"`
	Statement      *string   `json:"statement,omitempty"`
	Image          *string   `json:"image,omitempty"`
	Options        []string  `json:"options"`
	CorrectOption  int       `json:"correct_option"`
	SelectedOption *int      `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
	Explanation    *string   `json:"explanation,omitempty"`
}

type AnswerKeyResponse struct {
	AttemptID   uuid.UUID          `json:"attempt_id"`
	Score       int                `json:"score"`
	Total       int                `json:"total"`
	Correct     int                `json:"correct"`
	Wrong       int                `json:"wrong"`
	Unattempted int                `json:"unattempted"`
	Accuracy    float64            `json:"accuracy"`
	Band        string             `json:"band"`
	Items       []AnswerKeyItemDTO `json:"items"`
}

type LeaderboardEntryDTO struct {
	Rank      int       `json:"rank"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
