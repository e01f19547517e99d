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

type CatalogHandler struct {
	svc services.CatalogService
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListCategories
// @Summary      Список рубрик
// @Description  active=true ограничивает активными и заполняет пустой каталог стартовым набором
// @Tags         catalog
// @Produce      json
// @Param        active  query  string  false  "true — только активные"
// @Success      200  {object}  helpers.Response
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	list, err := h.svc.ListCategories(r.Context(), activeOnly)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// CreateCategory
// @Summary      Создать рубрику
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateCategoryRequest  true  "Рубрика"
// @Success      201  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при создании рубрики", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, category)
}

// InitCategories
// @Summary      Создать стартовые рубрики
// @Description  Работает только на пустом каталоге
// @Tags         catalog
// @Produce      json
// @Success      201  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Router       /api/categories/init [post]
func (h *CatalogHandler) InitCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.InitDefaultCategories(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, list)
}

// UpdateCategory
// @Summary      Обновить рубрику
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID рубрики"
// @Param        body  body  models.CreateCategoryRequest  true  "Изменяемые поля"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/categories/{id}/update [put]
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при обновлении рубрики", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, category)
}

// DeleteCategory
// @Summary      Удалить рубрику
// @Description  Отказывает, пока на рубрику ссылается хотя бы одно видео
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID рубрики"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/categories/{id}/delete [delete]
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, nil)
}

// ListVideos
// @Summary      Список видео
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Slug рубрики"
// @Success      200  {object}  helpers.Response
// @Router       /api/videos [get]
func (h *CatalogHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListVideos(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// CreateVideo
// @Summary      Добавить видео
// @Description  Идентификатор ролика извлекается из URL; невалидный URL отклоняется
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateVideoRequest  true  "Видео"
// @Success      201  {object}  helpers.Response
// @Failure      400  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/videos [post]
func (h *CatalogHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при добавлении видео", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	video, err := h.svc.CreateVideo(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, video)
}

// UpdateVideo
// @Summary      Обновить видео
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID видео"
// @Param        body  body  models.UpdateVideoRequest  true  "Изменяемые поля"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/videos/{id}/update [put]
func (h *CatalogHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при обновлении видео", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	video, err := h.svc.UpdateVideo(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, video)
}

// DeleteVideo
// @Summary      Удалить видео
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID видео"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/videos/{id}/delete [delete]
func (h *CatalogHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteVideo(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, nil)
}
