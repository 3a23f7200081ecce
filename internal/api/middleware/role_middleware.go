package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

// RequireRole 檢查當前用戶角色, 需掛在AuthMiddleware之後
// 已認證但角色不符回403, 與未認證的401有區別
func RequireRole(role constants.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := util.GetAuthUserFromContext(r.Context())
			if user == nil {
				api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
				return
			}

			if user.Role != role {
				api.ErrorJSON(w, int(er.UnauthorizedCode), er.New(er.UnauthorizedCode, "insufficient role"), er.ErrStrMap[er.UnauthorizedCode])
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
