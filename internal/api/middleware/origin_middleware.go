package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

// OriginCheckMiddleware 檢查寫入類請求的Origin header
// cookie認證下瀏覽器會自動附token, 比對Origin擋掉跨站偽造的寫入
// 沒有Origin的請求(curl, server to server)不在此限
func OriginCheckMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			origin := r.Header.Get("Origin")
			if origin != "" && !isAllowedOrigin(origin) {
				api.ErrorJSON(w, int(er.UnauthorizedCode), er.New(er.UnauthorizedCode, "origin not allowed"), er.ErrStrMap[er.UnauthorizedCode])
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func isAllowedOrigin(origin string) bool {
	for _, allowed := range config.GetConfig().AllowedOrigins() {
		if origin == allowed {
			return true
		}
	}
	return false
}
