package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/rj/api/token"
)

func GetTokenPayloadFromContext[T token.UserIDConstraint](ctx context.Context) *token.Payload[T] {
	var tokenPayload *token.Payload[T]

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload = v.(*token.Payload[T])
	}

	return tokenPayload
}

// GetAuthUserFromContext 取得本次請求重新載入的使用者
// role等可變欄位一律以此為準，不使用token payload內容
func GetAuthUserFromContext(ctx context.Context) *model.UserModel {
	var user *model.UserModel

	if v := ctx.Value(constants.AuthorizationUserKey); v != nil {
		user = v.(*model.UserModel)
	}

	return user
}
