package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api"
	"github.com/RoyceAzure/rj/api/token"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
)

// AuthMiddleware 驗證ctx是否有token payload, 並以payload內的user id重新載入用戶
// role直接取db當下的值, 令牌簽發後被降級的admin立即失效
func AuthMiddleware(userService service.IUserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload[uuid.UUID])
			if !ok {
				api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
				return
			}

			//token有效但用戶已被刪除時一樣視為未認證
			user, err := userService.GetUserByID(r.Context(), payload.UserId)
			if err != nil {
				api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
				return
			}

			ctx := context.WithValue(r.Context(), constants.AuthorizationUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
