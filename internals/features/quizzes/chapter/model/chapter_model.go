package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChapterModel struct {
	ChapterID        uuid.UUID `gorm:"column:chapter_id;type:uuid;primaryKey" json:"chapter_id"`
	ChapterTitle     string    `gorm:"column:chapter_title;type:varchar(50);not null" json:"chapter_title"`
	ChapterQuizID    uuid.UUID `gorm:"column:chapter_quiz_id;type:uuid;not null;index" json:"chapter_quiz_id"`
	ChapterCreatedAt time.Time `gorm:"column:chapter_created_at;autoCreateTime" json:"chapter_created_at"`
}

func (ChapterModel) TableName() string {
	return "chapters"
}

func (ch *ChapterModel) BeforeCreate(tx *gorm.DB) error {
	if ch.ChapterID == uuid.Nil {
		ch.ChapterID = uuid.New()
	}
	return nil
}
