package seeds

import (
	"log"

	"gorm.io/gorm"

	"quizku_backend/internals/seeds/admins"
)

// Run menjalankan seluruh seeder bootstrap. Seeder idempotent, aman
// dipanggil tiap kali aplikasi start.
func Run(db *gorm.DB) {
	if err := admins.SeedDefaultAdmin(db); err != nil {
		log.Printf("[ERROR] Seeding admin gagal: %v", err)
	}
}
