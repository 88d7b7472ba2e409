package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"quizku_backend/internals/configs"
)

const (
	AccessTokenTTL = 24 * time.Hour
	ResetTokenTTL  = 15 * time.Minute
)

// CreateUserToken menerbitkan access token untuk user biasa.
func CreateUserToken(userID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"user_name": username,
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	return signToken(claims, configs.JWTSecret)
}

// CreateAdminToken menerbitkan access token untuk admin.
func CreateAdminToken(adminID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"admin_id":       adminID.String(),
		"admin_username": username,
		"exp":            time.Now().Add(AccessTokenTTL).Unix(),
		"iat":            time.Now().Unix(),
	}
	return signToken(claims, configs.JWTSecret)
}

// CreateResetToken menerbitkan token reset password berumur pendek.
// Pakai secret terpisah supaya token reset tidak bisa dipakai sebagai
// access token.
func CreateResetToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"reset_user_id": userID.String(),
		"exp":           time.Now().Add(ResetTokenTTL).Unix(),
		"iat":           time.Now().Unix(),
	}
	return signToken(claims, configs.JWTResetSecret)
}

// ParseResetToken memvalidasi token reset dan mengembalikan user ID-nya.
func ParseResetToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return []byte(configs.JWTResetSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("token reset tidak valid atau kadaluarsa")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("claims token tidak valid")
	}
	rawID, ok := claims["reset_user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("token bukan token reset password")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, errors.New("user ID pada token tidak valid")
	}
	return userID, nil
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
