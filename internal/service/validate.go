package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9._-]+$`)
)

// NormalizeIdentifier email/username 一律小寫去空白後存取
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return er.New(er.BadRequestCode, "email format is invalid")
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < constants.UsernameMinLen || len(username) > constants.UsernameMaxLen {
		return er.New(er.BadRequestCode, "username must be 3 to 20 characters")
	}
	if !usernameRegex.MatchString(username) {
		return er.New(er.BadRequestCode, "username may only contain a-z, 0-9, '.', '_' and '-'")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < constants.PasswordMinLen {
		return er.New(er.BadRequestCode, "password must be at least 8 characters")
	}
	return nil
}

// validateBirthDate 檢查是否為真實存在的日期且不在未來
// time.Date 會將 2月30日 正規化成 3月初, 用欄位回讀比對來擋掉這種輸入
func validateBirthDate(year, month, day int) (time.Time, error) {
	if year <= 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, er.New(er.BadRequestCode, "birth date is not a valid calendar date")
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, er.New(er.BadRequestCode, "birth date is not a valid calendar date")
	}

	if d.After(time.Now().UTC()) {
		return time.Time{}, er.New(er.BadRequestCode, "birth date cannot be in the future")
	}

	return d, nil
}
