package handlers

import (
	"encoding/json"
	"net/http"

	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/services"
	"wisdomcircle/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type SiteHandler struct {
	svc services.SiteService
}

func NewSiteHandler(svc services.SiteService) *SiteHandler {
	return &SiteHandler{svc: svc}
}

// GetSettings
// @Summary      Настройки сайта
// @Tags         site
// @Produce      json
// @Success      200  {object}  helpers.Response
// @Router       /api/settings [get]
func (h *SiteHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetSettings(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, settings)
}

// UpdateSettings
// @Summary      Обновить настройки сайта
// @Description  Частичное обновление; socialLinks сливаются по ключам
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  models.UpdateSettingsRequest  true  "Изменяемые поля"
// @Success      200  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/settings [put]
func (h *SiteHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при обновлении настроек", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, settings)
}

// ListAnnouncements
// @Summary      Активные объявления
// @Tags         site
// @Produce      json
// @Success      200  {object}  helpers.Response
// @Router       /api/announcements [get]
func (h *SiteHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAnnouncements(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

type createAnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CreateAnnouncement
// @Summary      Создать объявление
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body  createAnnouncementRequest  true  "Объявление"
// @Success      201  {object}  helpers.Response
// @Failure      400  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/announcements [post]
func (h *SiteHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при создании объявления", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	a, err := h.svc.CreateAnnouncement(r.Context(), req.Title, req.Message)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, a)
}

// DeleteAnnouncement
// @Summary      Удалить объявление
// @Tags         site
// @Produce      json
// @Param        id  path  string  true  "ID объявления"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/announcements/{id}/delete [delete]
func (h *SiteHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteAnnouncement(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, nil)
}
