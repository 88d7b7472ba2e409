package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID        uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey" json:"quiz_id"`
	QuizTitle     string    `gorm:"column:quiz_title;type:varchar(100);not null" json:"quiz_title"`
	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

func (q *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if q.QuizID == uuid.Nil {
		q.QuizID = uuid.New()
	}
	return nil
}
