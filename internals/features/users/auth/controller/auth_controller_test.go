package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	authService "quizku_backend/internals/features/users/auth/service"
	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

func newAuthTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()

	// token service butuh secret terisi
	configs.JWTSecret = "test-secret"
	configs.JWTResetSecret = "test-reset-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.AdminModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewAuthController(db)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})
	app.Post("/api/auth/register", ctrl.Register)
	app.Post("/api/auth/login", ctrl.Login)
	app.Post("/api/auth/login-admin", ctrl.LoginAdmin)
	app.Post("/api/auth/forgot-password", ctrl.ForgotPassword)
	app.Post("/api/auth/reset-password", ctrl.ResetPassword)
	app.Post("/api/auth/logout", ctrl.Logout)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	rawResp, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	_ = json.Unmarshal(rawResp, &parsed)
	return resp, parsed
}

func validRegisterPayload() map[string]any {
	return map[string]any{
		"username": "budi_santoso",
		"password": "rahasia123",
		"fullname": "Budi Santoso",
		"dob":      "2000-05-17",
	}
}

func TestRegisterSuccess(t *testing.T) {
	app, db := newAuthTestApp(t, "auth_register")

	resp, body := postJSON(t, app, "/api/auth/register", validRegisterPayload())
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%v)", resp.StatusCode, body)
	}

	var user model.UserModel
	if err := db.First(&user, "user_username = ?", "budi_santoso").Error; err != nil {
		t.Fatalf("user tidak tersimpan: %v", err)
	}
	if user.UserPassword == "rahasia123" {
		t.Fatal("password tersimpan plaintext, harus hash bcrypt")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte("rahasia123")) != nil {
		t.Error("hash password tidak cocok dengan password asli")
	}

	// payload response tidak boleh memuat password
	data := body["data"].(map[string]any)
	if _, leaked := data["password"]; leaked {
		t.Error("password ikut terkirim di response")
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newAuthTestApp(t, "auth_register_validation")

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"password terlalu pendek", func(p map[string]any) { p["password"] = "abc" }},
		{"username kosong", func(p map[string]any) { p["username"] = "" }},
		{"dob format salah", func(p map[string]any) { p["dob"] = "17-05-2000" }},
		{"fullname kosong", func(p map[string]any) { p["fullname"] = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validRegisterPayload()
			tc.mutate(payload)
			resp, _ := postJSON(t, app, "/api/auth/register", payload)
			if resp.StatusCode != fiber.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", resp.StatusCode)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _ := newAuthTestApp(t, "auth_register_dup")

	resp, _ := postJSON(t, app, "/api/auth/register", validRegisterPayload())
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("registrasi pertama gagal: %d", resp.StatusCode)
	}
	resp, body := postJSON(t, app, "/api/auth/register", validRegisterPayload())
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 untuk username duplikat (body=%v)", resp.StatusCode, body)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	app, _ := newAuthTestApp(t, "auth_login")

	postJSON(t, app, "/api/auth/register", validRegisterPayload())

	resp, body := postJSON(t, app, "/api/auth/login", map[string]any{
		"username": "budi_santoso",
		"password": "rahasia123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%v)", resp.StatusCode, body)
	}
	token, _ := body["data"].(map[string]any)["access_token"].(string)
	if token == "" {
		t.Fatal("access_token kosong")
	}

	// password salah -> 401, tanpa membocorkan field mana yang salah
	resp, _ = postJSON(t, app, "/api/auth/login", map[string]any{
		"username": "budi_santoso",
		"password": "salah",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginAdmin(t *testing.T) {
	app, db := newAuthTestApp(t, "auth_login_admin")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.AdminModel{AdminUsername: "admin", AdminPassword: string(hashed)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := postJSON(t, app, "/api/auth/login-admin", map[string]any{
		"username": "admin",
		"password": "admin123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%v)", resp.StatusCode, body)
	}
	if token, _ := body["data"].(map[string]any)["access_token"].(string); token == "" {
		t.Fatal("access_token admin kosong")
	}

	// user biasa tidak bisa login lewat endpoint admin
	postJSON(t, app, "/api/auth/register", validRegisterPayload())
	resp, _ = postJSON(t, app, "/api/auth/login-admin", map[string]any{
		"username": "budi_santoso",
		"password": "rahasia123",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestForgotAndResetPasswordFlow(t *testing.T) {
	app, _ := newAuthTestApp(t, "auth_forgot_reset")

	postJSON(t, app, "/api/auth/register", validRegisterPayload())

	// dob salah -> identitas tidak cocok
	resp, _ := postJSON(t, app, "/api/auth/forgot-password", map[string]any{
		"username": "budi_santoso",
		"dob":      "1999-01-01",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404 untuk dob salah", resp.StatusCode)
	}

	// dob benar -> token reset
	resp, body := postJSON(t, app, "/api/auth/forgot-password", map[string]any{
		"username": "budi_santoso",
		"dob":      "2000-05-17",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%v)", resp.StatusCode, body)
	}
	token := body["data"].(map[string]any)["reset_token"].(string)
	if token == "" {
		t.Fatal("reset_token kosong")
	}

	// reset dengan token valid
	resp, _ = postJSON(t, app, "/api/auth/reset-password", map[string]any{
		"token":        token,
		"new_password": "passwordbaru",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("reset gagal: %d", resp.StatusCode)
	}

	// login pakai password lama harus gagal, password baru berhasil
	resp, _ = postJSON(t, app, "/api/auth/login", map[string]any{
		"username": "budi_santoso",
		"password": "rahasia123",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("password lama masih bisa dipakai: %d", resp.StatusCode)
	}
	resp, _ = postJSON(t, app, "/api/auth/login", map[string]any{
		"username": "budi_santoso",
		"password": "passwordbaru",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("password baru tidak bisa dipakai: %d", resp.StatusCode)
	}
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	app, _ := newAuthTestApp(t, "auth_reset_bad_token")

	resp, _ := postJSON(t, app, "/api/auth/reset-password", map[string]any{
		"token":        "bukan.token.valid",
		"new_password": "passwordbaru",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	// access token biasa tidak boleh dipakai sebagai token reset
	accessToken, err := authService.CreateUserToken(uuid.New(), "budi")
	if err != nil {
		t.Fatal(err)
	}
	resp, _ = postJSON(t, app, "/api/auth/reset-password", map[string]any{
		"token":        accessToken,
		"new_password": "passwordbaru",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 untuk access token", resp.StatusCode)
	}
}
