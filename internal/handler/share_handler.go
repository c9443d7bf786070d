package handler

import (
	"encoding/json"
	requestresponse "filelink/internal/model/requestresponse"
	"filelink/internal/ports"
	"filelink/internal/security"
	"filelink/internal/util"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ShareHandler struct {
	ports.ShareService
}

func NewShareHandler(shareService ports.ShareService) *ShareHandler {
	return &ShareHandler{shareService}
}

// ListShares godoc
// @Summary Список ссылок пользователя
// @Description Возвращает все ссылки текущего пользователя вместе с путями скачивания
// @Tags Shares
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListSharesResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares [get]
func (h *ShareHandler) ListShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	shares, err := h.ShareService.ListShares(ctx, claims.UserUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.ListSharesResponse{}
	resp.Data.Shares = make([]requestresponse.ShareResponse, 0, len(shares))
	for i := range shares {
		resp.Data.Shares = append(resp.Data.Shares, requestresponse.ShareResponseFromModel(&shares[i]))
	}
	resp.Count = len(resp.Data.Shares)

	util.WriteJSON(w, http.StatusOK, resp)
}

// NewShareDraft godoc
// @Summary Заготовка новой ссылки
// @Description Разбирает путь файла на директорию и имя, флаги включены по умолчанию
// @Tags Shares
// @Produce json
// @Param path query string false "Путь файла относительно корня" example(photos/2024/cat.jpg)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ShareDraftResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares/new [get]
func (h *ShareHandler) NewShareDraft(w http.ResponseWriter, r *http.Request) {
	draft := h.ShareService.NewShareDraft(r.URL.Query().Get("path"))
	util.WriteJSON(w, http.StatusOK, requestresponse.ShareDraftResponse{Data: draft})
}

// CreateShare godoc
// @Summary Создание ссылки
// @Description Создаёт публичную ссылку на файл внутри корня. Существование файла не проверяется.
// @Tags Shares
// @Accept json
// @Produce json
// @Param body body requestresponse.ShareRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.GetShareResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Ошибка валидации или путь уже занят"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares [post]
func (h *ShareHandler) CreateShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	share, err := h.ShareService.CreateShare(ctx, claims.UserUUID, req.ToDraft())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.GetShareResponse{}
	resp.Data.Share = requestresponse.ShareResponseFromModel(share)

	util.WriteJSON(w, http.StatusCreated, resp)
}

// GetShare godoc
// @Summary Получение ссылки по ID
// @Tags Shares
// @Produce json
// @Param id path int true "ID ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GetShareResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares/{id} [get]
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	id, ok := shareIDFromRequest(w, r)
	if ok == false {
		return
	}

	share, err := h.ShareService.GetShare(ctx, id, claims.UserUUID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.GetShareResponse{}
	resp.Data.Share = requestresponse.ShareResponseFromModel(share)

	util.WriteJSON(w, http.StatusOK, resp)
}

// EditShare godoc
// @Summary Редактирование ссылки
// @Description Меняет путь и флаги ссылки; slug сохраняется
// @Tags Shares
// @Accept json
// @Produce json
// @Param id path int true "ID ссылки"
// @Param body body requestresponse.ShareRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GetShareResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares/{id}/edit [post]
func (h *ShareHandler) EditShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	id, ok := shareIDFromRequest(w, r)
	if ok == false {
		return
	}

	var req requestresponse.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}

	share, err := h.ShareService.EditShare(ctx, id, claims.UserUUID, req.ToDraft())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.GetShareResponse{}
	resp.Data.Share = requestresponse.ShareResponseFromModel(share)

	util.WriteJSON(w, http.StatusOK, resp)
}

// DeleteShare godoc
// @Summary Удаление ссылки
// @Description После удаления slug перестаёт работать, файл на диске не трогается
// @Tags Shares
// @Produce json
// @Param id path int true "ID ссылки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.DeleteShareResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/shares/{id}/delete [post]
func (h *ShareHandler) DeleteShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := security.GetClaimsFromContext(ctx)
	if err != nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	id, ok := shareIDFromRequest(w, r)
	if ok == false {
		return
	}

	if err := h.ShareService.DeleteShare(ctx, id, claims.UserUUID); err != nil {
		writeServiceError(w, err)
		return
	}

	resp := requestresponse.DeleteShareResponse{}
	resp.Response.ID = id
	resp.Response.Deleted = true

	util.WriteJSON(w, http.StatusOK, resp)
}

func shareIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		util.HandleError(w, "некорректный ID ссылки", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
