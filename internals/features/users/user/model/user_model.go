package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Password selalu berupa hash bcrypt, tidak pernah plaintext.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUsername  string    `gorm:"column:user_username;type:varchar(50);uniqueIndex;not null" json:"user_username"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserFullname  string    `gorm:"column:user_fullname;type:varchar(50);not null" json:"user_fullname"`
	UserDob       time.Time `gorm:"column:user_dob;type:date;not null" json:"user_dob"`
	UserIsPaid    bool      `gorm:"column:user_is_paid;not null;default:false" json:"user_is_paid"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
