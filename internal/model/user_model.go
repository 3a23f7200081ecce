package model

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/google/uuid"
)

type UserModel struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Role         constants.UserRole
	HashPassword string
	BirthDate    time.Time
	StoreName    *string
	StoreAddress *string
	CreatedAt    time.Time
}

// IsAdmin role是每次請求重新從db載入的，不會從token取得
func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

type CreateUserModel struct {
	Email        string
	Username     string
	Password     string
	BirthYear    int
	BirthMonth   int
	BirthDay     int
	StoreName    *string
	StoreAddress *string
}

type UpdateUserProfileModel struct {
	StoreName    *string
	StoreAddress *string
}

type LoginResponseModel struct {
	AccessToken string
	User        UserModel
}
