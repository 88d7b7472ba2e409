package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/users/user/model"
)

// UserDTO: representasi user tanpa field sensitif.
type UserDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	Dob       string    `json:"dob"`
	IsPaid    bool      `json:"is_paid"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		UserID:    u.UserID,
		Username:  u.UserUsername,
		Fullname:  u.UserFullname,
		Dob:       u.UserDob.Format("2006-01-02"),
		IsPaid:    u.UserIsPaid,
		CreatedAt: u.UserCreatedAt,
	}
}

// UserAttemptReportRow: satu baris laporan admin. User tanpa attempt
// tetap muncul dengan kolom attempt berisi "N/A".
type UserAttemptReportRow struct {
	Username       string `json:"username"`
	Fullname       string `json:"fullname"`
	QuizTitle      string `json:"quiz_title"`
	ChapterTitle   string `json:"chapter_title"`
	Score          string `json:"score"`
	TotalQuestions string `json:"total_questions"`
	AttemptedAt    string `json:"attempted_at"`
}
