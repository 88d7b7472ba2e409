package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/chapter/model"
)

type CreateChapterRequest struct {
	ChapterTitle  string    `json:"chapter_title" validate:"required,min=3,max=50"`
	ChapterQuizID uuid.UUID `json:"chapter_quiz_id" validate:"required"`
}

type UpdateChapterRequest struct {
	ChapterTitle string `json:"chapter_title" validate:"required,min=3,max=50"`
}

type ChapterDTO struct {
	ChapterID        uuid.UUID `json:"chapter_id"`
	ChapterTitle     string    `json:"chapter_title"`
	ChapterQuizID    uuid.UUID `json:"chapter_quiz_id"`
	QuestionCount    int64     `json:"question_count"`
	ChapterCreatedAt time.Time `json:"chapter_created_at"`
}

func ToChapterDTO(ch model.ChapterModel, questionCount int64) ChapterDTO {
	return ChapterDTO{
		ChapterID:        ch.ChapterID,
		ChapterTitle:     ch.ChapterTitle,
		ChapterQuizID:    ch.ChapterQuizID,
		QuestionCount:    questionCount,
		ChapterCreatedAt: ch.ChapterCreatedAt,
	}
}
