package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminModel merepresentasikan tabel admins.
// Minimal satu baris admin tersedia setelah seeding pertama.
type AdminModel struct {
	AdminID        uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;type:varchar(100);uniqueIndex;not null" json:"admin_username"`
	AdminPassword  string    `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if a.AdminID == uuid.Nil {
		a.AdminID = uuid.New()
	}
	return nil
}
