package constants

// Ekstensi gambar soal yang diizinkan untuk di-upload.
var AllowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

const (
	// Folder penyimpanan gambar soal (lokal).
	UploadDir = "static/uploads"

	// Durasi pengerjaan: 60 detik per soal.
	SecondsPerQuestion = 60

	// Leaderboard hanya menampilkan 10 besar.
	LeaderboardLimit = 10

	// Panjang minimal password user & admin.
	MinPasswordLength = 6
)
