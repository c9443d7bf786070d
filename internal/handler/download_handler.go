package handler

import (
	"errors"
	"filelink/internal/model"
	"filelink/internal/ports"
	"filelink/internal/util"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

type DownloadHandler struct {
	ports.DownloadService
}

func NewDownloadHandler(downloadService ports.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadService}
}

// Download godoc
// @Summary Скачивание файла по ссылке
// @Description Публичный доступ по slug, авторизация не требуется. Поддерживаются Range-запросы.
// Отсутствующая и отключённая ссылки дают одинаковый 404.
// @Tags Download
// @Produce octet-stream
// @Param slug path string true "Slug ссылки"
// @Param Range header string false "Диапазон байт" example(bytes=0-1023)
// @Success 200 {file} file
// @Success 206 {file} file "Частичное содержимое"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /download/{slug} [get]
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	target, err := h.DownloadService.ResolveDownload(r.Context(), slug, util.RequestMetaFromRequest(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// запись в журнал уже сделана в ResolveDownload, файл мог исчезнуть после неё
	file, err := os.Open(target.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.HandleError(w, "не найдено", http.StatusNotFound)
			return
		}
		log.Printf("[DownloadHandler] не удалось открыть файл ссылки %s: %v", slug, err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Printf("[DownloadHandler] ошибка чтения файла ссылки %s: %v", slug, err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", contentDisposition(target.Disposition, target.Filename))
	if target.AcceptRanges {
		w.Header().Set("Accept-Ranges", "bytes")
	}

	http.ServeContent(w, r, target.Filename, info.ModTime(), file)
}

// DownloadHead godoc
// @Summary Заголовки файла по ссылке
// @Description Те же заголовки, что и у GET, без тела. В журнал скачиваний не записывается.
// @Tags Download
// @Param slug path string true "Slug ссылки"
// @Success 200
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /download/{slug} [head]
func (h *DownloadHandler) DownloadHead(w http.ResponseWriter, r *http.Request) {
	h.Download(w, r)
}

// contentDisposition : filename кодируется по RFC 2231, если имя не ASCII
func contentDisposition(disposition model.Disposition, filename string) string {
	value := mime.FormatMediaType(string(disposition), map[string]string{"filename": filename})
	if value == "" {
		return string(disposition)
	}
	return value
}
