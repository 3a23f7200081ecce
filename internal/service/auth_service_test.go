package service

import (
	"context"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/RoyceAzure/rj/util/random"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	"github.com/stretchr/testify/require"
)

func newTestTokenMaker() (token.Maker[uuid.UUID], error) {
	return token.NewPasetoMaker[uuid.UUID](random.RandomString(32))
}

func randomCreateUserModel() *model.CreateUserModel {
	return &model.CreateUserModel{
		Email:      random.RandomEmail(),
		Username:   strings.ToLower(random.RandomString(10)),
		Password:   "secret-password",
		BirthYear:  1995,
		BirthMonth: 5,
		BirthDay:   20,
	}
}

func registerRandomUser(t *testing.T) (*model.UserModel, *model.CreateUserModel) {
	t.Helper()

	arg := randomCreateUserModel()
	user, err := testAuthService.Register(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	t.Cleanup(func() {
		testStore.DeleteUser(context.Background(), pgutil.UUIDToPgUUIDV5(user.ID))
	})

	return user, arg
}

func requireAnaCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var anaErr *er.AnaError
	require.ErrorAs(t, err, &anaErr)
	require.Equal(t, code, int(anaErr.Code))
}

func TestRegister(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestRegister")
	}

	user, arg := registerRandomUser(t)

	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, constants.RoleUser, user.Role)
	require.NotEqual(t, arg.Password, user.HashPassword)
	require.Equal(t, 1995, user.BirthDate.Year())
}

func TestRegisterNormalizesIdentifiers(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestRegisterNormalizesIdentifiers")
	}

	arg := randomCreateUserModel()
	arg.Email = "  " + strings.ToUpper(arg.Email) + " "

	user, err := testAuthService.Register(context.Background(), arg)
	require.NoError(t, err)
	t.Cleanup(func() {
		testStore.DeleteUser(context.Background(), pgutil.UUIDToPgUUIDV5(user.ID))
	})

	require.Equal(t, strings.ToLower(strings.TrimSpace(arg.Email)), user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestRegisterDuplicateEmail")
	}

	existing, _ := registerRandomUser(t)

	arg := randomCreateUserModel()
	arg.Email = existing.Email

	_, err := testAuthService.Register(context.Background(), arg)
	requireAnaCode(t, err, int(er.BadRequestCode))
	require.Contains(t, err.Error(), "email")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestRegisterDuplicateUsername")
	}

	existing, _ := registerRandomUser(t)

	arg := randomCreateUserModel()
	arg.Username = existing.Username

	//email沒撞但username撞到, 錯誤訊息要指向username
	_, err := testAuthService.Register(context.Background(), arg)
	requireAnaCode(t, err, int(er.BadRequestCode))
	require.Contains(t, err.Error(), "username")
}

func TestLogin(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestLogin")
	}

	user, arg := registerRandomUser(t)

	//email登入
	res, err := testAuthService.Login(context.Background(), user.Email, arg.Password)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, user.ID, res.User.ID)

	//username登入
	res, err = testAuthService.Login(context.Background(), user.Username, arg.Password)
	require.NoError(t, err)
	require.Equal(t, user.ID, res.User.ID)
}

func TestLoginUserNotFound(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestLoginUserNotFound")
	}

	_, err := testAuthService.Login(context.Background(), random.RandomEmail(), "whatever-password")
	requireAnaCode(t, err, int(er.UnauthenticatedCode))
	require.Contains(t, err.Error(), ErrUserNotFound.Error())
}

func TestLoginWrongPassword(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestLoginWrongPassword")
	}

	user, _ := registerRandomUser(t)

	_, err := testAuthService.Login(context.Background(), user.Email, "wrong-password")
	requireAnaCode(t, err, int(er.UnauthenticatedCode))
	require.Contains(t, err.Error(), ErrCredentialsInvalid.Error())
}

func TestCreateAccessToken(t *testing.T) {
	if testAuthService == nil {
		t.Skip("Database not configured, skipping TestCreateAccessToken")
	}

	userID := uuid.New()
	accessToken, payload, err := testAuthService.CreateAccessToken(context.Background(), "user@example.com", userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.Equal(t, "user@example.com", payload.UPN)
	require.Equal(t, userID, payload.UserId)
}
