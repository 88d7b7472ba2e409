package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttemptModel: satu submission quiz oleh satu user.
// Baris ini immutable setelah insert; jadi sumber kebenaran untuk
// answer key, riwayat, dan leaderboard.
type QuizAttemptModel struct {
	QuizAttemptID        uuid.UUID  `gorm:"column:quiz_attempt_id;type:uuid;primaryKey" json:"quiz_attempt_id"`
	QuizAttemptUserID    uuid.UUID  `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index" json:"quiz_attempt_user_id"`
	QuizAttemptQuizID    uuid.UUID  `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index" json:"quiz_attempt_quiz_id"`
	QuizAttemptChapterID *uuid.UUID `gorm:"column:quiz_attempt_chapter_id;type:uuid;index" json:"quiz_attempt_chapter_id,omitempty"`

	QuizAttemptScore *int `gorm:"column:quiz_attempt_score" json:"quiz_attempt_score,omitempty"`

	// Snapshot jawaban: question_id -> opsi terpilih (1..4) atau null.
	QuizAttemptAnswers datatypes.JSON `gorm:"column:quiz_attempt_answers;type:jsonb" json:"quiz_attempt_answers"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;autoCreateTime" json:"quiz_attempt_created_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttemptModel) BeforeCreate(tx *gorm.DB) error {
	if a.QuizAttemptID == uuid.Nil {
		a.QuizAttemptID = uuid.New()
	}
	return nil
}
