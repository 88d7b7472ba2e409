package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Hapus karakter selain huruf, angka, titik, dash, underscore
var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// AllowedImageFile memeriksa ekstensi file terhadap allow-list gambar.
func AllowedImageFile(filename string, allowed map[string]struct{}) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	_, ok := allowed[ext]
	return ok
}

func SanitizeFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filename, "_")
}

// GenerateUploadFilename membuat nama unik: prefix timestamp supaya tidak tabrakan.
func GenerateUploadFilename(originalFilename string) string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(originalFilename))
}

// SaveUploadedImage simpan file gambar di bawah dir dengan nama unik,
// return nama file yang tersimpan.
func SaveUploadedImage(c *fiber.Ctx, fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	filename := GenerateUploadFilename(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return filename, nil
}
