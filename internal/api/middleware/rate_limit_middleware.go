package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/ratelimit"
)

// NewRateLimitMiddleware 創建限流中間件
// 掛在登入與註冊這類容易被暴力嘗試的路由上
func NewRateLimitMiddleware(config *ratelimit.LimiterConfig) func(http.Handler) http.Handler {
	bucket := ratelimit.NewTokenBucket(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bucket.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
