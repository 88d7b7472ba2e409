package admins

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/features/users/user/model"
)

// SeedDefaultAdmin memastikan minimal satu akun admin tersedia.
// Username tetap "admin", password dari env ADMIN_PASSWORD
// (default "admin123" untuk lokal).
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.AdminModel{}).
		Where("admin_username = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[INFO] Admin default sudah ada, seeding dilewati")
		return nil
	}

	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.AdminModel{
		AdminUsername: "admin",
		AdminPassword: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("[SUCCESS] Admin default berhasil dibuat")
	return nil
}
