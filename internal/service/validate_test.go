package service

import (
	"testing"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	require.NoError(t, validateEmail("user@example.com"))
	require.NoError(t, validateEmail("first.last+tag@sub.example.co"))

	require.Error(t, validateEmail(""))
	require.Error(t, validateEmail("no-at-sign"))
	require.Error(t, validateEmail("user@nodot"))
	require.Error(t, validateEmail("user@example."))
	require.Error(t, validateEmail("Україна@example.com"))
}

func TestValidateUsername(t *testing.T) {
	require.NoError(t, validateUsername("abc"))
	require.NoError(t, validateUsername("shop_owner.99"))
	require.NoError(t, validateUsername("a-b-c"))

	require.Error(t, validateUsername("ab"))                                //太短
	require.Error(t, validateUsername("abcdefghijklmnopqrstu"))             //太長
	require.Error(t, validateUsername("UpperCase"))                        //大寫
	require.Error(t, validateUsername("has space"))
	require.Error(t, validateUsername("emoji🙂"))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, validatePassword("12345678"))
	require.Error(t, validatePassword("1234567"))
}

func TestValidateBirthDate(t *testing.T) {
	d, err := validateBirthDate(1995, 5, 20)
	require.NoError(t, err)
	require.Equal(t, time.Date(1995, 5, 20, 0, 0, 0, 0, time.UTC), d)

	//2月30日會被time.Date正規化成3月, 必須擋下來
	_, err = validateBirthDate(1995, 2, 30)
	require.Error(t, err)
	var anaErr *er.AnaError
	require.ErrorAs(t, err, &anaErr)
	require.Equal(t, er.BadRequestCode, anaErr.Code)

	_, err = validateBirthDate(2001, 4, 31)
	require.Error(t, err)

	_, err = validateBirthDate(2001, 13, 1)
	require.Error(t, err)

	_, err = validateBirthDate(0, 1, 1)
	require.Error(t, err)

	//未來日期
	future := time.Now().AddDate(1, 0, 0)
	_, err = validateBirthDate(future.Year(), int(future.Month()), future.Day())
	require.Error(t, err)

	//閏年2月29日合法
	_, err = validateBirthDate(2000, 2, 29)
	require.NoError(t, err)
	_, err = validateBirthDate(1999, 2, 29)
	require.Error(t, err)
}

func TestNormalizeIdentifier(t *testing.T) {
	require.Equal(t, "user@example.com", NormalizeIdentifier("  User@Example.COM "))
	require.Equal(t, "shopper01", NormalizeIdentifier("Shopper01"))
}
