package util

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 產生單向加鹽雜湊，明文密碼不落地
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 驗證明文密碼與雜湊是否相符
func CheckPassword(password string, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
