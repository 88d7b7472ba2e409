package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionModel: soal pilihan ganda dengan 4 opsi.
// Minimal salah satu dari statement / image harus terisi.
type QuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey" json:"question_id"`
	QuestionQuizID    uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`
	QuestionChapterID uuid.UUID `gorm:"column:question_chapter_id;type:uuid;not null;index" json:"question_chapter_id"`

	QuestionStatement *string `gorm:"column:question_statement;type:text" json:"question_statement,omitempty"`
	QuestionImage     *string `gorm:"column:question_image;type:varchar(200)" json:"question_image,omitempty"`

	QuestionOptions       []string `gorm:"column:question_options;type:jsonb;serializer:json" json:"question_options"`
	QuestionCorrectOption int      `gorm:"column:question_correct_option;not null" json:"question_correct_option"` // 1..4
	QuestionExplanation   *string  `gorm:"column:question_explanation;type:text" json:"question_explanation,omitempty"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (q *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if q.QuestionID == uuid.Nil {
		q.QuestionID = uuid.New()
	}
	return nil
}
