package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizku_backend/internals/features/users/auth/dto"
	authService "quizku_backend/internals/features/users/auth/service"
	userDTO "quizku_backend/internals/features/users/user/dto"
	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🟢 REGISTER USER
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Fullname = strings.TrimSpace(req.Fullname)

	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"dob": {"Format tanggal lahir harus YYYY-MM-DD"},
		})
	}

	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_username = ?", req.Username).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if count > 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"username": {"Username sudah terdaftar"},
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserUsername: req.Username,
		UserPassword: string(hashed),
		UserFullname: req.Fullname,
		UserDob:      dob,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.ToUserDTO(user))
}

// =============================
// 🟢 LOGIN USER
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_username = ?", strings.TrimSpace(req.Username)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := authService.CreateUserToken(user.UserID, user.UserUsername)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setAccessTokenCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserDTO(user),
	})
}

// =============================
// 🟢 LOGIN ADMIN
// =============================
func (ctrl *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	var admin model.AdminModel
	err := ctrl.DB.Where("admin_username = ?", strings.TrimSpace(req.Username)).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat admin")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := authService.CreateAdminToken(admin.AdminID, admin.AdminUsername)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setAccessTokenCookie(c, token)
	return helper.JsonOK(c, "Login admin berhasil", fiber.Map{
		"access_token": token,
	})
}

// =============================
// 🟡 FORGOT PASSWORD
// =============================
// Verifikasi identitas pakai username + tanggal lahir, lalu terbitkan
// token reset berumur 15 menit.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"dob": {"Format tanggal lahir harus YYYY-MM-DD"},
		})
	}

	var user model.UserModel
	err = ctrl.DB.Where("user_username = ?", strings.TrimSpace(req.Username)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Username atau tanggal lahir tidak cocok")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat user")
	}

	if !sameDate(user.UserDob, dob) {
		return helper.JsonError(c, fiber.StatusNotFound, "Username atau tanggal lahir tidak cocok")
	}

	token, err := authService.CreateResetToken(user.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token reset")
	}

	return helper.JsonOK(c, "Token reset password diterbitkan, berlaku 15 menit", fiber.Map{
		"reset_token": token,
	})
}

// =============================
// 🟡 RESET PASSWORD
// =============================
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationMessages(err))
	}

	userID, err := authService.ParseResetToken(req.Token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", string(hashed))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Password berhasil direset", nil)
}

// =============================
// 🔴 LOGOUT
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func setAccessTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(authService.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func validationMessages(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "Field wajib diisi"
		case "min":
			msg = "Minimal " + fe.Param() + " karakter"
		case "max":
			msg = "Maksimal " + fe.Param() + " karakter"
		case "datetime":
			msg = "Format harus " + fe.Param()
		default:
			msg = "Nilai tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
