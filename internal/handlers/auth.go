package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/middleware"
	"wisdomcircle/internal/services"
	"wisdomcircle/internal/utils"
	"wisdomcircle/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	svc        services.AuthService
	jwtSecret  string
	sessionTTL time.Duration
	secure     bool
}

func NewAuthHandler(svc services.AuthService, jwtSecret string, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		secure:     secure,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login
// @Summary      Вход администратора
// @Description  При совпадении пароля ставит HTTP-only cookie с токеном сессии
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Пароль"
// @Success      200  {object}  helpers.Response
// @Failure      401  {object}  helpers.Response
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.svc.Login(r.Context(), req.Password)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	token, err := utils.GenerateSessionToken(h.jwtSecret, userID, h.sessionTTL)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка генерации токена сессии", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

// Logout
// @Summary      Выход администратора
// @Tags         auth
// @Produce      json
// @Success      200  {object}  helpers.Response
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})

	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
