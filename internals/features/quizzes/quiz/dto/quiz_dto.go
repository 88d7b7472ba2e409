package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/quiz/model"
)

type CreateQuizRequest struct {
	QuizTitle string `json:"quiz_title" validate:"required,min=3,max=100"`
}

type UpdateQuizRequest struct {
	QuizTitle string `json:"quiz_title" validate:"required,min=3,max=100"`
}

type QuizDTO struct {
	QuizID        uuid.UUID `json:"quiz_id"`
	QuizTitle     string    `json:"quiz_title"`
	QuizCreatedAt time.Time `json:"quiz_created_at"`
}

func ToQuizDTO(q model.QuizModel) QuizDTO {
	return QuizDTO{
		QuizID:        q.QuizID,
		QuizTitle:     q.QuizTitle,
		QuizCreatedAt: q.QuizCreatedAt,
	}
}
