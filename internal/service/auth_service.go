package service

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api/token"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IAuthService interface {
	// Register 建立新帳號
	//
	// 參數:
	//   - ctx: 上下文，包含請求相關資訊
	//   - arg: 註冊資料，email/username/password/生日
	//
	// 返回值:
	//   - *model.UserModel: 建立完成的用戶資訊
	//   - error: 可能發生的錯誤
	//
	// 錯誤:
	//   - er.BadRequestCode 400: 欄位格式錯誤、email或username已被使用
	//   - er.InternalErrorCode 500: 資料庫或雜湊過程錯誤
	Register(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
	// Login 帳號密碼登入並發放訪問令牌
	//
	// 參數:
	//   - ctx: 上下文，包含請求相關資訊
	//   - identifier: email或username
	//   - password: 密碼明文
	//
	// 返回值:
	//   - *model.LoginResponseModel: 包含訪問令牌與用戶資訊的響應模型
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 用戶不存在或密碼錯誤
	//   - er.InternalErrorCode 500: 令牌簽發錯誤
	Login(ctx context.Context, identifier string, password string) (*model.LoginResponseModel, error)
	CreateAccessToken(ctx context.Context, upn string, userID uuid.UUID) (string, *token.Payload[uuid.UUID], error)
}

type AuthService struct {
	dbDao       db.IStore
	userService IUserService
	tokenMaker  token.Maker[uuid.UUID]
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("credentials invalid")
)

func NewAuthService(dbDao db.IStore, userService IUserService, tokenMaker token.Maker[uuid.UUID]) IAuthService {
	if reflect.ValueOf(dbDao).IsNil() {
		panic("auth service initialization failed: dbDao cannot be nil")
	}
	if reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		dbDao:       dbDao,
		userService: userService,
		tokenMaker:  tokenMaker,
	}
}

// Register 建立新帳號
//
// 參數:
//   - ctx: 上下文，包含請求相關資訊
//   - arg: 註冊資料
//
// 錯誤:
//   - er.BadRequestCode 400: 欄位格式錯誤、email或username已被使用
//   - er.InternalErrorCode 500: 資料庫或雜湊過程錯誤
func (a *AuthService) Register(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	email := NormalizeIdentifier(arg.Email)
	username := NormalizeIdentifier(arg.Username)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(arg.Password); err != nil {
		return nil, err
	}
	birthDate, err := validateBirthDate(arg.BirthYear, arg.BirthMonth, arg.BirthDay)
	if err != nil {
		return nil, err
	}

	//email與username的重複要分開回報, 前端才能標示正確欄位
	emailCount, err := a.dbDao.CountUsersByEmail(ctx, email)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if emailCount > 0 {
		return nil, er.New(er.BadRequestCode, "email is already registered")
	}

	usernameCount, err := a.dbDao.CountUsersByUsername(ctx, username)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if usernameCount > 0 {
		return nil, er.New(er.BadRequestCode, "username is already taken")
	}

	hashPassword, err := util.HashPassword(arg.Password)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, "hash password failed")
	}

	userEntity, err := a.dbDao.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           pgutil.UUIDToPgUUIDV5(uuid.New()),
		Email:        email,
		Username:     username,
		PasswordHash: hashPassword,
		Role:         string(constants.RoleUser),
		BirthDate:    pgtypeDate(birthDate),
		StoreName:    pgutil.StringToPgTextV5(arg.StoreName),
		StoreAddress: pgutil.StringToPgTextV5(arg.StoreAddress),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		//並發註冊撞到unique constraint時一樣回報重複
		if isUniqueViolation(err) {
			return nil, er.New(er.BadRequestCode, "email or username is already registered")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoUserToModel(&userEntity), nil
}

// Login 帳號密碼登入並發放訪問令牌
//
// 錯誤:
//   - er.UnauthenticatedCode 401: 用戶不存在或密碼錯誤
//   - er.InternalErrorCode 500: 令牌簽發錯誤
func (a *AuthService) Login(ctx context.Context, identifier string, password string) (*model.LoginResponseModel, error) {
	identifier = NormalizeIdentifier(identifier)
	if identifier == "" || password == "" {
		return nil, er.New(er.UnauthenticatedCode, ErrCredentialsInvalid.Error())
	}

	userEntity, err := a.dbDao.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.New(er.UnauthenticatedCode, ErrUserNotFound.Error())
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if err := util.CheckPassword(password, userEntity.PasswordHash); err != nil {
		return nil, er.New(er.UnauthenticatedCode, ErrCredentialsInvalid.Error())
	}

	userModel := convertRepoUserToModel(&userEntity)

	accessToken, _, err := a.CreateAccessToken(ctx, userModel.Email, userModel.ID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return &model.LoginResponseModel{
		AccessToken: accessToken,
		User:        *userModel,
	}, nil
}

// CreateAccessToken 令牌只攜帶身份, 角色每次請求都重查DB
func (a *AuthService) CreateAccessToken(ctx context.Context, upn string, userID uuid.UUID) (string, *token.Payload[uuid.UUID], error) {
	return a.tokenMaker.CreateToken(upn, userID, time.Duration(constants.AccessTokenDuration)*time.Hour)
}
