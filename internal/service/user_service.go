package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IUserService interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	// UpdateProfile 更新用戶商店資訊
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 用戶不存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	UpdateProfile(ctx context.Context, id uuid.UUID, arg *model.UpdateUserProfileModel) (*model.UserModel, error)
	// ChangePassword 驗證舊密碼後更新新密碼
	//
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 舊密碼錯誤
	//   - er.BadRequestCode 400: 新密碼格式不符
	//   - er.InternalErrorCode 500: 內部處理錯誤
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword string, newPassword string) error
	// ListUsers 列出全部用戶 僅限admin使用
	ListUsers(ctx context.Context) ([]model.UserModel, error)
	// SetUserRole 調整用戶角色
	// 降級最後一位admin會直接拒絕, 檢查與更新在同一筆交易內
	// 以 FOR UPDATE 鎖定全部admin列, 避免兩個併發降級同時通過檢查
	//
	// 錯誤:
	//   - er.BadRequestCode 400: 角色值不合法或會使系統沒有admin
	//   - er.NotFoundCode 404: 目標用戶不存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	SetUserRole(ctx context.Context, targetID uuid.UUID, role string) (*model.UserModel, error)
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) IUserService {
	if reflect.ValueOf(dbDao).IsNil() {
		panic("user service initialization failed: dbDao cannot be nil")
	}
	return &UserService{
		dbDao: dbDao,
	}
}

func (u *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByID(ctx, pgutil.UUIDToPgUUIDV5(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.New(er.NotFoundCode, "user not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoUserToModel(&userEntity), nil
}

func (u *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, arg *model.UpdateUserProfileModel) (*model.UserModel, error) {
	userEntity, err := u.dbDao.UpdateUserProfile(ctx, sqlc.UpdateUserProfileParams{
		ID:           pgutil.UUIDToPgUUIDV5(id),
		StoreName:    pgutil.StringToPgTextV5(arg.StoreName),
		StoreAddress: pgutil.StringToPgTextV5(arg.StoreAddress),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.New(er.NotFoundCode, "user not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoUserToModel(&userEntity), nil
}

// ChangePassword 驗證舊密碼後更新新密碼
func (u *UserService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword string, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	userEntity, err := u.dbDao.GetUserByID(ctx, pgutil.UUIDToPgUUIDV5(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return er.New(er.NotFoundCode, "user not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	if err := util.CheckPassword(currentPassword, userEntity.PasswordHash); err != nil {
		return er.New(er.UnauthenticatedCode, "current password is incorrect")
	}

	hashPassword, err := util.HashPassword(newPassword)
	if err != nil {
		return er.New(er.InternalErrorCode, "hash password failed")
	}

	err = u.dbDao.UpdateUserPassword(ctx, sqlc.UpdateUserPasswordParams{
		ID:           pgutil.UUIDToPgUUIDV5(id),
		PasswordHash: hashPassword,
	})
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]model.UserModel, error) {
	userEntities, err := u.dbDao.ListUsers(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	users := make([]model.UserModel, 0, len(userEntities))
	for i := range userEntities {
		users = append(users, *convertRepoUserToModel(&userEntities[i]))
	}
	return users, nil
}

// SetUserRole 調整用戶角色, 檢查與更新包在同一筆交易
func (u *UserService) SetUserRole(ctx context.Context, targetID uuid.UUID, role string) (*model.UserModel, error) {
	if !constants.IsValidUserRole(role) {
		return nil, er.New(er.BadRequestCode, "role must be user or admin")
	}

	var updated sqlc.User
	err := u.dbDao.ExecTx(ctx, func(q *sqlc.Queries) error {
		target, err := q.GetUserByID(ctx, pgutil.UUIDToPgUUIDV5(targetID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return er.New(er.NotFoundCode, "user not found")
			}
			return er.New(er.InternalErrorCode, err.Error())
		}

		//將admin降為user前, 鎖住所有admin列再數
		//兩個併發降級會在這裡串行化, 後到者看到的admin數已經減一
		if target.Role == string(constants.RoleAdmin) && constants.UserRole(role) == constants.RoleUser {
			adminIDs, err := q.ListAdminIDsForUpdate(ctx)
			if err != nil {
				return er.New(er.InternalErrorCode, err.Error())
			}
			if len(adminIDs) <= 1 {
				return er.New(er.BadRequestCode, "cannot demote the last administrator")
			}
		}

		updated, err = q.SetUserRole(ctx, sqlc.SetUserRoleParams{
			ID:   pgutil.UUIDToPgUUIDV5(targetID),
			Role: role,
		})
		if err != nil {
			return er.New(er.InternalErrorCode, err.Error())
		}
		return nil
	})
	if err != nil {
		var anaErr *er.AnaError
		if errors.As(err, &anaErr) {
			return nil, err
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoUserToModel(&updated), nil
}
