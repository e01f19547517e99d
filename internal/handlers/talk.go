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

type TalkHandler struct {
	svc services.TalkService
}

func NewTalkHandler(svc services.TalkService) *TalkHandler {
	return &TalkHandler{svc: svc}
}

func serializeTalks(talks []*models.Talk, includeEmail bool) []models.TalkResponse {
	out := make([]models.TalkResponse, 0, len(talks))
	for _, t := range talks {
		out = append(out, t.Serialize(includeEmail))
	}
	return out
}

// List
// @Summary      Список обсуждений
// @Description  public=1 — только публичные и не удалённые; email не отдаётся
// @Tags         talks
// @Produce      json
// @Param        public  query  string  false  "1 — только публичные"
// @Success      200  {object}  helpers.Response
// @Router       /api/talks [get]
func (h *TalkHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyPublic := r.URL.Query().Get("public") == "1"

	talks, err := h.svc.List(r.Context(), onlyPublic)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, serializeTalks(talks, false))
}

// Create
// @Summary      Создать обсуждение
// @Description  Валидация зависит от видимости: public требует title/text/nickname/category, private — text и валидный email
// @Tags         talks
// @Accept       json
// @Produce      json
// @Param        body  body  services.CreateTalkRequest  true  "Заявка"
// @Success      200  {object}  helpers.Response
// @Failure      400  {object}  helpers.Response
// @Router       /api/talks [post]
func (h *TalkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateTalkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при создании обсуждения", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	talk, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, talk.Serialize(false))
}

// Get
// @Summary      Обсуждение по id
// @Tags         talks
// @Produce      json
// @Param        id  path  string  true  "ID обсуждения"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/talks/{id} [get]
func (h *TalkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	talk, err := h.svc.Get(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, talk.Serialize(false))
}

// UpdateEngagement
// @Summary      Лайки и комментарии
// @Description  Принимает абсолютное значение likes и/или новый комментарий; статус этим путём не меняется
// @Tags         talks
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID обсуждения"
// @Param        body  body  services.EngagementRequest  true  "Правка"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/talks/{id} [put]
func (h *TalkHandler) UpdateEngagement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req services.EngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при правке обсуждения", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	talk, err := h.svc.UpdateEngagement(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, talk.Serialize(false))
}

// SoftDelete
// @Summary      Мягкое удаление обсуждения
// @Tags         talks
// @Produce      json
// @Param        id  path  string  true  "ID обсуждения"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/talks/{id} [delete]
func (h *TalkHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.svc.SoftDelete(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, nil)
}

// DeleteComment
// @Summary      Удалить комментарий обсуждения
// @Tags         talks
// @Produce      json
// @Param        id         path  string  true  "ID обсуждения"
// @Param        commentId  path  string  true  "ID комментария"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/talks/{id}/comments/{commentId} [delete]
func (h *TalkHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	talk, err := h.svc.DeleteComment(r.Context(), vars["id"], vars["commentId"])
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, talk.Serialize(false))
}

// AdminList
// @Summary      Модераторский список обсуждений
// @Description  Без фильтров по видимости и статусу; email приватных заявок включён
// @Tags         talks
// @Produce      json
// @Success      200  {object}  helpers.Response
// @Failure      401  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/talks/admin [get]
func (h *TalkHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	talks, err := h.svc.List(r.Context(), false)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, serializeTalks(talks, true))
}

type moderateRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Moderate
// @Summary      Модерация обсуждения
// @Description  Действия: approve, responded, delete
// @Tags         talks
// @Accept       json
// @Produce      json
// @Param        body  body  moderateRequest  true  "Действие"
// @Success      200  {object}  helpers.Response
// @Failure      400  {object}  helpers.Response
// @Failure      401  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     AdminSession
// @Router       /api/talks/admin [put]
func (h *TalkHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при модерации", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	talk, err := h.svc.Moderate(r.Context(), req.ID, req.Action)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, talk.Serialize(true))
}
