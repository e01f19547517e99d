package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"wisdomcircle/internal/logger"
	"wisdomcircle/internal/models"
	"wisdomcircle/internal/services"
	"wisdomcircle/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const defaultArticleLimit = 100

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ListPublic
// @Summary      Публичный список статей
// @Description  Только одобренные, без полного текста (его отдаёт детальная выборка)
// @Tags         articles
// @Produce      json
// @Param        limit  query  int  false  "Максимум записей (по умолчанию 100)"
// @Success      200  {object}  helpers.Response
// @Router       /api/articles [get]
func (h *ArticleHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	limit := defaultArticleLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.svc.ListPublic(r.Context(), limit)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

// Submit
// @Summary      Прислать статью
// @Description  Создаёт неодобренную статью; title, content и author обязательны
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  models.SubmitArticleRequest  true  "Статья"
// @Success      201  {object}  helpers.Response
// @Failure      400  {object}  helpers.Response
// @Router       /api/articles [post]
func (h *ArticleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при приёме статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	article, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, article)
}

// ViewDetail
// @Summary      Статья по slug
// @Description  Каждый запрос засчитывает просмотр; неодобренные статьи недоступны
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Slug статьи"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/articles/{slug} [get]
func (h *ArticleHandler) ViewDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.svc.ViewDetail(r.Context(), slug)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// AdminList
// @Summary      Все статьи для модерации
// @Tags         admin
// @Produce      json
// @Param        approved  query  bool  false  "Фильтр по одобрению"
// @Success      200  {object}  helpers.Response
// @Failure      401  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/admin/articles [get]
func (h *ArticleHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	var approved *bool
	if raw := r.URL.Query().Get("approved"); raw != "" {
		v := raw == "true"
		approved = &v
	}

	list, err := h.svc.ListAdmin(r.Context(), approved)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, list)
}

type approveRequest struct {
	Approved *bool `json:"approved,omitempty"`
}

// Approve
// @Summary      Одобрить или скрыть статью
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID статьи"
// @Param        body  body  approveRequest  false  "approved (по умолчанию true)"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/admin/articles/{id}/approve [put]
func (h *ArticleHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Пустое тело равнозначно {} — одобряем
	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при одобрении статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	article, err := h.svc.SetApproved(r.Context(), id, approved)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, article)
}

// Delete
// @Summary      Удалить статью
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID статьи"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, nil)
}

// Stats
// @Summary      Статистика статей
// @Tags         admin
// @Produce      json
// @Success      200  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/admin/stats [get]
func (h *ArticleHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, stats)
}
