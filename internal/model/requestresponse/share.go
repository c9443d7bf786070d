package requestresponse

import (
	"filelink/internal/model"
	"time"
)

// ShareRequest : тело запроса на создание и редактирование ссылки.
// Отсутствующие флаги считаются включёнными
type ShareRequest struct {
	Directory       string `json:"directory" example:"photos/2024"`
	Name            string `json:"name" example:"cat.jpg"`
	DownloadEnabled *bool  `json:"download_enabled,omitempty" example:"true"`
	ForceDownload   *bool  `json:"force_download,omitempty" example:"false"`
}

// ToDraft : конвертирует запрос в model.ShareDraft
func (r ShareRequest) ToDraft() model.ShareDraft {
	draft := model.NewShareDraft(r.Directory, r.Name)
	if r.DownloadEnabled != nil {
		draft.DownloadEnabled = *r.DownloadEnabled
	}
	if r.ForceDownload != nil {
		draft.ForceDownload = *r.ForceDownload
	}
	return draft
}

// ShareResponse : описывает ссылку для JSON-ответа
type ShareResponse struct {
	ID              int64  `json:"id" example:"42"`
	Slug            string `json:"slug" example:"aZ3kP9qL0mX7tRw"`
	Directory       string `json:"directory" example:"photos/2024"`
	Name            string `json:"name" example:"cat.jpg"`
	DownloadEnabled bool   `json:"download_enabled" example:"true"`
	ForceDownload   bool   `json:"force_download" example:"false"`
	DownloadURL     string `json:"download_url" example:"/download/aZ3kP9qL0mX7tRw"`
	CreatedAt       string `json:"created" example:"2025-08-23T12:34:56Z"`
	UpdatedAt       string `json:"updated" example:"2025-08-23T12:34:56Z"`
}

// DownloadURL : публичный путь скачивания по slug
func DownloadURL(slug string) string {
	return "/download/" + slug
}

// ShareResponseFromModel : конвертирует model.Share в ShareResponse
func ShareResponseFromModel(share *model.Share) ShareResponse {
	return ShareResponse{
		ID:              share.ID,
		Slug:            share.Slug,
		Directory:       share.Directory,
		Name:            share.Name,
		DownloadEnabled: share.DownloadEnabled,
		ForceDownload:   share.ForceDownload,
		DownloadURL:     DownloadURL(share.Slug),
		CreatedAt:       share.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       share.UpdatedAt.Format(time.RFC3339),
	}
}

type GetShareResponse struct {
	Data struct {
		Share ShareResponse `json:"share"`
	} `json:"data"`
}

// ListSharesResponse : ответ API со списком ссылок владельца
type ListSharesResponse struct {
	Data struct {
		Shares []ShareResponse `json:"shares"`
	} `json:"data"`
	Count int `json:"count" example:"10"`
}

// ShareDraftResponse : заготовка формы новой ссылки
type ShareDraftResponse struct {
	Data model.ShareDraft `json:"data"`
}

type DeleteShareResponse struct {
	Response struct {
		ID      int64 `json:"id" example:"42"`
		Deleted bool  `json:"deleted" example:"true"`
	} `json:"response"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error   string            `json:"error" example:"Bad Request"`
	Message string            `json:"message" example:"ошибка валидации"`
	Code    int               `json:"code" example:"400"`
	Fields  map[string]string `json:"fields,omitempty"`
}
