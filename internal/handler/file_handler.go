package handler

import (
	"errors"
	"filelink/internal/model"
	requestresponse "filelink/internal/model/requestresponse"
	"filelink/internal/ports"
	"filelink/internal/util"
	"log"
	"net/http"
)

const filesRoute = "/api/files"

type FileHandler struct {
	ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService}
}

// Browse godoc
// @Summary Листинг директории
// @Description Возвращает поддиректории и файлы внутри корня, файлы с существующей ссылкой содержат поле share.
// Путь за пределами корня перенаправляет на листинг корня.
// @Tags Files
// @Produce json
// @Param path query string false "Путь директории относительно корня" example(photos/2024)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListingResponse
// @Success 302 "Путь за пределами корня"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/files [get]
func (h *FileHandler) Browse(w http.ResponseWriter, r *http.Request) {
	requestPath := r.URL.Query().Get("path")

	listing, err := h.FileService.Browse(r.Context(), requestPath)
	if err != nil {
		if errors.Is(err, model.ErrPathEscape) {
			log.Printf("[FileHandler] попытка выхода за пределы корня: %q", requestPath)
			http.Redirect(w, r, filesRoute, http.StatusFound)
			return
		}
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ListingResponseFromModel(listing))
}
