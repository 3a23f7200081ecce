package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"
)

// AuthPayloadMiddleware 解析token payload
// token來源依序為Authorization header與cookie, 瀏覽器用cookie, api client用bearer
// 解析失敗不會中斷請求, 只是不設置context, 由AuthMiddleware決定是否拒絕
func AuthPayloadMiddleware(tokenMaker token.Maker[uuid.UUID]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := checkAuthPayload(tokenMaker, r)
			if ok {
				ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
				next.ServeHTTP(w, r.WithContext(ctx))
			} else {
				next.ServeHTTP(w, r)
			}
		})
	}
}

func checkAuthPayload(tokenMaker token.Maker[uuid.UUID], r *http.Request) (*token.Payload[uuid.UUID], bool) {
	accessToken, ok := extractAccessToken(r)
	if !ok {
		return nil, false
	}

	payload, err := tokenMaker.VertifyToken(accessToken)
	if err != nil {
		return nil, false
	}

	return payload, true
}

func extractAccessToken(r *http.Request) (string, bool) {
	authorizationHeader := r.Header.Get(string(constants.AuthorizationHeaderKey))
	if len(authorizationHeader) > 0 {
		fields := strings.Fields(authorizationHeader)
		if len(fields) < 2 {
			return "", false
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != string(constants.AuthorizationTypeBearer) {
			return "", false
		}
		return fields[1], true
	}

	cookie, err := r.Cookie(config.GetConfig().AuthCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
