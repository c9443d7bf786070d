package model

import (
	"path"
	"time"
)

const (
	SlugLength         = 15
	MaxDirectoryLength = 200
	MaxNameLength      = 100
)

type Share struct {
	ID              int64     `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Directory       string    `db:"directory" json:"directory"`
	Name            string    `db:"name" json:"name"`
	DownloadEnabled bool      `db:"download_enabled" json:"download_enabled"`
	ForceDownload   bool      `db:"force_download" json:"force_download"`
	OwnerUUID       string    `db:"owner_uuid" json:"owner_uuid"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// FullPath : путь файла относительно корня, "directory/name" или просто "name"
func (s *Share) FullPath() string {
	if s.Directory == "" {
		return s.Name
	}
	return s.Directory + "/" + s.Name
}

// Disposition : attachment при ForceDownload, иначе inline
func (s *Share) Disposition() Disposition {
	if s.ForceDownload {
		return DispositionAttachment
	}
	return DispositionInline
}

// ShareDraft : поля, которые задаёт пользователь при создании и редактировании
type ShareDraft struct {
	Directory       string `json:"directory"`
	Name            string `json:"name"`
	DownloadEnabled bool   `json:"download_enabled"`
	ForceDownload   bool   `json:"force_download"`
}

// NewShareDraft : черновик с флагами по умолчанию
func NewShareDraft(directory, name string) ShareDraft {
	return ShareDraft{
		Directory:       directory,
		Name:            name,
		DownloadEnabled: true,
		ForceDownload:   true,
	}
}

// SplitSharePath : "a/b/c.txt" -> ("a/b", "c.txt"); путь без родителя даёт пустую директорию
func SplitSharePath(requestPath string) (directory string, name string) {
	if requestPath == "" {
		return "", ""
	}
	name = path.Base(requestPath)
	if parent := path.Dir(requestPath); parent != "." && parent != "/" {
		directory = parent
	}
	return directory, name
}

type DownloadLog struct {
	ID          int64     `db:"id" json:"id"`
	Timestamp   time.Time `db:"downloaded_at" json:"timestamp"`
	ShareID     int64     `db:"share_id" json:"share_id"`
	ClientIP    string    `db:"ip" json:"ip"`
	UserAgent   string    `db:"user_agent" json:"user_agent"`
	RangeHeader string    `db:"range_header" json:"range_header"`
}

// RequestMeta : данные запроса на скачивание, извлечённые транспортным слоем
type RequestMeta struct {
	Method      string
	ClientIP    string
	UserAgent   string
	RangeHeader string
}

func NewDownloadLog(share *Share, meta RequestMeta, now time.Time) *DownloadLog {
	return &DownloadLog{
		Timestamp:   now,
		ShareID:     share.ID,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
		RangeHeader: meta.RangeHeader,
	}
}
