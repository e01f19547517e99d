package middleware

import (
	"context"
	"net/http"

	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/reqctx"
	"wisdomcircle/internal/utils"
	"wisdomcircle/internal/utils/helpers"

	"go.uber.org/zap"
)

// RequireAdmin пропускает только запросы с валидным токеном сессии в cookie.
func RequireAdmin(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				logger.WithCtx(r.Context()).Warn("RequireAdmin: отсутствует cookie сессии")
				helpers.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := utils.VerifySessionToken(jwtSecret, cookie.Value)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("RequireAdmin: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, userID)
			ctx = reqctx.WithUserID(ctx, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
